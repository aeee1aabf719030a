// Package main hosts the subdesk CLI entrypoint and command graph.
//
// Every command loads the configuration, opens the settings database, and
// drives the subsettings service: provider and language selection, provider
// groups, and search folders resolved for a media file. Path resolution,
// folder health, and search-type checks are exposed as standalone commands
// for troubleshooting. A .env file in the working directory is loaded before
// the configuration so the SUBDESK_* overrides can live there.
package main
