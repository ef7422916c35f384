package types

// Version is the application version, overwritten by the build process
var Version = "dev"
