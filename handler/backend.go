package handler

import (
	"github.com/skillpath/handler/payload"
	"github.com/skillpath/metal/env"
	"github.com/skillpath/pkg/reconcile"
)

const SkillsPath = "/generate-skills"
const UserDetailsPath = "/user/details"

// Backend holds the fetch routines the pages run against the remote service.
type Backend struct {
	Skills      reconcile.Routine[[]payload.Skill]
	UserDetails reconcile.Routine[*payload.UserDetails]
}

func MakeBackend(e env.BackendEnvironment, client reconcile.Poster) Backend {
	return Backend{
		Skills: reconcile.Routine[[]payload.Skill]{
			Name:           "skills",
			URL:            e.Endpoint(SkillsPath),
			Client:         client,
			Extract:        payload.ExtractSkills,
			FailureMessage: payload.SkillsErrorMessage,
		},
		UserDetails: reconcile.Routine[*payload.UserDetails]{
			Name:           "user_details",
			URL:            e.Endpoint(UserDetailsPath),
			Client:         client,
			Extract:        payload.ExtractUserDetails,
			FailureMessage: payload.UserDetailsErrorMessage,
		},
	}
}
