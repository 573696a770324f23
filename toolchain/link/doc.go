// Package link holds the option set passed to a linker and to performers:
// optimisation level, state size limit, entry processor, target platform,
// session, sample rate and block size, and a provider for the values of
// externally declared constants.
//
// Options are plain struct fields. Values that have "unset" semantics use
// guarded setters, and the option names of the original key/value form are
// kept as Key* constants and used as field names in option files.
package link
