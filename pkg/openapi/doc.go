// Package openapi turns OpenAPI component schemas into record models, so a
// scaffolder can build forms for an API's resources without hand-written
// model declarations. Loader and parser implementations live under
// internal/openapi to keep kin-openapi out of the public API.
package openapi
