// Package subsettings is the settings service: it reconciles persisted
// provider, language, folder, and group settings against what the host
// currently offers, and turns configured folders into health-checked targets
// for a media file.
//
// Reads never write. Reconcile* methods return the reconciled list and leave
// the store untouched; Persist* methods save a list; Sync* methods do both
// under the service mutex. The folder list is cached after the first read and
// only refreshed by Invalidate or SyncFolders.
package subsettings
