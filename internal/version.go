package internal

// Version is the kirtis release version.
const Version = "0.3.1"
