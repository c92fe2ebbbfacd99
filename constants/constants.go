package constants

import "os"

// LatestVersion is the newest match file format version this module writes.
const LatestVersion = 5.0

// LegacyVersion marks lines parsed through the version 1 grammar variants.
const LegacyVersion = 1.0

// MatchFileVersionAttr is the info() attribute naming the file format version.
const MatchFileVersionAttr = "matchFileVersion"

func GetServePort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}
