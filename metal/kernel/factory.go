package kernel

import (
	"log"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/pkg/llogs"
	"github.com/skillpath/pkg/portal"
)

const defaultBackendTimeout = 15 * time.Second
const defaultBackendUserAgent = "skillpath-web"
const defaultSessionCookie = "skillpath_session"
const defaultSessionTTL = 24 * time.Hour

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:              env.Sentry.DSN,
		Debug:            env.App.IsLocal(),
		Environment:      env.App.Type,
		AttachStacktrace: true,
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

// MakeClient builds the client every backend routine posts through.
func MakeClient(env *env.Environment) *portal.Client {
	client := portal.NewClient(portal.GetDefaultTransport(), env.Backend.Timeout)
	client.UserAgent = env.Backend.UserAgent

	return client
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVarOr("ENV_APP_LOG_LEVEL", "info"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),
		DevHost:  env.GetEnvVar("ENV_DEV_HOST"),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	pingEnv := env.PingEnvironment{
		Username: env.GetSecretOrEnv("ping_username", "ENV_PING_USERNAME"),
		Password: env.GetSecretOrEnv("ping_password", "ENV_PING_PASSWORD"),
	}

	backendEnv := env.BackendEnvironment{
		URL:          env.GetEnvVarOr("ENV_BACKEND_URL", env.DefaultBackendURL),
		Timeout:      parseDuration(errorSuffix, "ENV_BACKEND_TIMEOUT", defaultBackendTimeout),
		UserAgent:    env.GetEnvVarOr("ENV_BACKEND_USER_AGENT", defaultBackendUserAgent),
		DefaultDream: env.GetEnvVarOr("ENV_DEFAULT_DREAM", env.DefaultDream),
	}

	sessionEnv := env.SessionEnvironment{
		Secret:     env.GetSecretOrEnv("session_secret", "ENV_SESSION_SECRET"),
		CookieName: env.GetEnvVarOr("ENV_SESSION_COOKIE", defaultSessionCookie),
		TTL:        parseDuration(errorSuffix, "ENV_SESSION_TTL", defaultSessionTTL),
		Secure:     parseBool(errorSuffix, "ENV_SESSION_SECURE", app.IsProduction()),
	}

	tracingEnv := env.NewTracingEnvironment()

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(pingEnv); err != nil {
		panic(errorSuffix + "invalid [ping] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(backendEnv); err != nil {
		panic(errorSuffix + "invalid [backend] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sessionEnv); err != nil {
		panic(errorSuffix + "invalid [session] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(tracingEnv); err != nil {
		panic(errorSuffix + "invalid [tracing] model: " + validate.GetErrorsAsJson())
	}

	web := &env.Environment{
		App:     app,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Ping:    pingEnv,
		Backend: backendEnv,
		Session: sessionEnv,
		Tracing: tracingEnv,
	}

	if _, err := validate.Rejects(web); err != nil {
		panic(errorSuffix + "invalid [skillpath] model: " + validate.GetErrorsAsJson())
	}

	return web
}

func parseDuration(errorSuffix, key string, fallback time.Duration) time.Duration {
	raw := env.GetEnvVar(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		panic(errorSuffix + "invalid value for " + key + ": " + err.Error())
	}

	return value
}

func parseBool(errorSuffix, key string, fallback bool) bool {
	raw := env.GetEnvVar(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		panic(errorSuffix + "invalid value for " + key + ": " + err.Error())
	}

	return value
}
