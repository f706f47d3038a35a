package util

import (
	"fmt"
	"os"
)

// Environment variables
const (
	DOMAIN                 = "DOMAIN"
	CATALOG_HOST           = "CATALOG_HOST"
	SHORELINE_HOST         = "SHORELINE_HOST"
	BF_TIDE_PREDICTION_URL = "BF_TIDE_PREDICTION_URL"
	WORKDIR_ROOT           = "WORKDIR_ROOT"
)

const defaultTidesURL = "https://bf-tideprediction.int.geointservices.io/tides"

// GetDomain returns a string for the DOMAIN environment variable
func GetDomain() string {
	domain, ok := os.LookupEnv(DOMAIN)
	if !ok {
		LogAlert(&BasicLogContext{}, "Didn't get domain from environment.")
	}
	return domain
}

// GetCatalogHost returns a string for the CATALOG_HOST environment variable
func GetCatalogHost() string {
	catalogHost, ok := os.LookupEnv(CATALOG_HOST)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get catalog host URL from the environment. Scene discovery and retrieval will not be available.")
	}
	return catalogHost
}

// GetShorelineHost returns a string for the SHORELINE_HOST environment variable
func GetShorelineHost() string {
	shorelineHost, ok := os.LookupEnv(SHORELINE_HOST)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get shoreline extraction host URL from the environment. Extraction will not be available.")
	}
	return shorelineHost
}

// GetTidesURL returns a string for the BF_TIDE_PREDICTION_URL
// environment variable or generates one if needed
func GetTidesURL() string {
	tidesURL, ok := os.LookupEnv(BF_TIDE_PREDICTION_URL)
	if !ok {
		LogInfo(&BasicLogContext{}, "Did not get explicit Tide Prediction URL from the environment. Using implied URL based on domain.")
		domain := GetDomain()
		if len(domain) == 0 {
			LogAlert(&BasicLogContext{}, "No domain in environment. Using default tides URL: "+defaultTidesURL)
			tidesURL = defaultTidesURL
		} else {
			tidesURL = fmt.Sprintf("https://bf-tideprediction.%s/tides", domain)
		}
	}
	return tidesURL
}

// GetWorkdirRoot returns the root directory under which transient run
// directories are created, defaulting to the system temp directory
func GetWorkdirRoot() string {
	if root, ok := os.LookupEnv(WORKDIR_ROOT); ok {
		return root
	}
	return os.TempDir()
}
