package testutil

import "os"

// Setenv sets an environment variable for the duration of a test.
func Setenv(c Cleanuper, name, value string) {
	oldValue, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, oldValue) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
	os.Setenv(name, value)
}
