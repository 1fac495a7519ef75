// Package access decides, per request path and session state, whether a
// navigation is served or redirected.
package access

import (
	"strings"

	"storefront/config"
)

// Class is the gate classification of a request path.
type Class int

const (
	ClassPublic Class = iota
	ClassInfra
	ClassProtected
	ClassAuth
)

func (c Class) String() string {
	switch c {
	case ClassInfra:
		return "infra"
	case ClassProtected:
		return "protected"
	case ClassAuth:
		return "auth"
	default:
		return "public"
	}
}

// Action is the outcome of a gate decision.
type Action int

const (
	Allow Action = iota
	Redirect
)

// Decision is the result of Decide. Target is set only for Redirect.
type Decision struct {
	Action Action
	Target string
}

// Policy holds the route classification surface.
type Policy struct {
	ProtectedPrefixes []string
	AuthPath          string
	LandingPath       string
	InfraPrefixes     []string
}

// NewPolicy builds the policy from the access configuration.
func NewPolicy(cfg *config.Config) *Policy {
	return &Policy{
		ProtectedPrefixes: cfg.Access.ProtectedPrefixes,
		AuthPath:          cfg.Access.AuthPath,
		LandingPath:       cfg.Access.LandingPath,
		InfraPrefixes:     cfg.Access.InfraPrefixes,
	}
}

// Classify returns the class of path. Infra paths are checked first.
func (p *Policy) Classify(path string) Class {
	if path == "" {
		path = "/"
	}

	if p.isInfra(path) {
		return ClassInfra
	}

	if path == p.AuthPath {
		return ClassAuth
	}

	for _, prefix := range p.ProtectedPrefixes {
		if hasSegmentPrefix(path, prefix) {
			return ClassProtected
		}
	}

	return ClassPublic
}

// Decide applies the gating rules. It has no side effects.
func (p *Policy) Decide(path string, authenticated bool) Decision {
	switch p.Classify(path) {
	case ClassProtected:
		if !authenticated {
			return Decision{Action: Redirect, Target: p.AuthPath}
		}
	case ClassAuth:
		if authenticated {
			return Decision{Action: Redirect, Target: p.LandingPath}
		}
	}

	return Decision{Action: Allow}
}

func (p *Policy) isInfra(path string) bool {
	for _, prefix := range p.InfraPrefixes {
		if hasSegmentPrefix(path, prefix) {
			return true
		}
	}

	// Files with an extension, e.g. /favicon.ico or /robots.txt
	if strings.HasSuffix(path, "/") {
		return false
	}
	last := path[strings.LastIndex(path, "/")+1:]

	return strings.Contains(last, ".")
}

// hasSegmentPrefix matches prefix only at a path segment boundary.
func hasSegmentPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return false
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}

	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
