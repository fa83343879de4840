//go:build tools

package tools

// This file tracks tool dependencies for reproducible builds.
// oapi-codegen regenerates internal/api from api/openapi.yaml (go generate ./internal/api).
// The goose CLI runs the same migrations as internal/adapters/postgres:
//   go run github.com/pressly/goose/v3/cmd/goose -dir internal/adapters/postgres/migrations postgres "$DATABASE_URL" up

import (
    _ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
    _ "github.com/pressly/goose/v3/cmd/goose"
)
