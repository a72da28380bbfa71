package llogs

type Driver interface {
	Close() bool
}
