// Enumerates the Android ABIs supported by the build pipeline and maps
// each one to its display name and compiler triples.
package target
