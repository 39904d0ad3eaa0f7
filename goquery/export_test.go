package goquery

// Descend exposes descend to the external test package.
var Descend = descend
