// Package charset moves text between external character sets and twine
// buffers.
//
// Charset names follow the WHATWG Encoding Standard ("utf-8", "utf-16",
// "shift_jis", "windows-1252", and their labels). Decoding honors a leading
// byte order mark regardless of the named charset, so "utf-16" input with a
// big-endian BOM decodes as big-endian.
package charset
