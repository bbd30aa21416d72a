// Package avdenoise builds denoising and mask-generation filter chains on
// top of a pluggable frame-processing host.
//
// The operations here only assemble the chain: a plugin.Core resolves the
// external filters by namespace, every invocation derives a new lazy clip
// handle, and the host computes pixels once frames are actually pulled.
// See the host subpackages for the available backends.
package avdenoise
