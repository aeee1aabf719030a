// Package language holds the built-in subtitle language catalog.
//
// The catalog is keyed by ISO 639-1 codes and lists languages in a stable
// order, which becomes the order new languages are appended in when the
// persisted language list is reconciled. Input codes in ISO 639-2 or as
// English words are normalized to the catalog key, and the host UI language
// is derived from a POSIX locale string such as "de_DE.UTF-8".
package language
