//go:build tools
// +build tools

// Package zenchat pins the code generators run by go generate, mockgen for
// the mocks of every repository, service and collaborator interface.
package zenchat

import (
	_ "go.uber.org/mock/mockgen"
)
