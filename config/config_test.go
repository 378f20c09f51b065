package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv creates a temporary directory for config files and changes the working directory to it.
// It returns a cleanup function that should be deferred by the caller.
func setupTestEnv(t *testing.T) func() {
	t.Helper()

	// Create a temporary directory for the test
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	err := os.Mkdir(configDir, 0755)
	require.NoError(t, err)

	// Save the original working directory
	originalWD, err := os.Getwd()
	require.NoError(t, err)

	// Change to the temporary directory
	err = os.Chdir(tempDir)
	require.NoError(t, err)

	// Return a cleanup function to restore the original working directory
	return func() {
		_ = os.Chdir(originalWD)
	}
}

// createTempConfigFile creates a temporary .env file with the given content.
func createTempConfigFile(t *testing.T, filename, content string) {
	t.Helper()
	// Assumes we are in the temp directory created by setupTestEnv
	filePath := filepath.Join("config", filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	// Common required variables for most tests
	setRequiredEnvVars := func(t *testing.T) {
		t.Setenv("COGNITO_USER_POOL_ID", "us-east-1_testpool")
		t.Setenv("COGNITO_CLIENT_ID", "test-client-id")
		t.Setenv("COGNITO_CLIENT_SECRET", "test-client-secret")
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	}

	t.Run("loads configuration from dev file", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		// No ENV set, should default to 'development'
		devConfigContent := `
PORT=3000
COGNITO_USER_POOL_ID=us-east-1_devpool
COGNITO_CLIENT_ID=dev-client-id
COGNITO_CLIENT_SECRET=dev-client-secret
AWS_REGION=us-east-1
MONGO_URI=mongodb://localhost:27017/dev
LOGIN_TIMEOUT_SECONDS=5
`
		createTempConfigFile(t, ".env.dev", devConfigContent)

		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "us-east-1_devpool", cfg.CognitoUserPoolID)
		assert.Equal(t, "dev-client-id", cfg.CognitoClientID)
		assert.Equal(t, "dev-client-secret", cfg.CognitoClientSecret)
		assert.Equal(t, "us-east-1", cfg.AWSRegion)
		assert.Equal(t, "mongodb://localhost:27017/dev", cfg.MongoURI)
		assert.Equal(t, 5, cfg.LoginTimeoutSeconds)
		// These were not in the file, so they should use the defaults
		assert.Equal(t, DefaultMongoDatabase, cfg.MongoDatabase)
		assert.Equal(t, DefaultBrowserCheckEnabled, cfg.BrowserCheckEnabled)
	})

	t.Run("loads configuration from prod file", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		t.Setenv("ENV", "production")

		prodConfigContent := `
PORT=8000
COGNITO_USER_POOL_ID=us-east-1_prodpool
COGNITO_CLIENT_ID=prod-client-id
COGNITO_CLIENT_SECRET=prod-client-secret
AWS_REGION=eu-west-1
MONGO_URI=mongodb://mongo.internal:27017/prod
MONGO_DATABASE=authprod
BROWSER_CHECK_ENABLED=false
`
		createTempConfigFile(t, ".env.prod", prodConfigContent)

		cfg := Load()

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "8000", cfg.Port)
		assert.Equal(t, "us-east-1_prodpool", cfg.CognitoUserPoolID)
		assert.Equal(t, "eu-west-1", cfg.AWSRegion)
		assert.Equal(t, "authprod", cfg.MongoDatabase)
		assert.False(t, cfg.BrowserCheckEnabled)
		assert.Equal(t, DefaultLoginTimeoutSeconds, cfg.LoginTimeoutSeconds)
	})

	t.Run("uses default values when not set in file or env", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		// Set only the required variables
		setRequiredEnvVars(t)

		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultMongoDatabase, cfg.MongoDatabase)
		assert.Equal(t, DefaultLoginTimeoutSeconds, cfg.LoginTimeoutSeconds)
		assert.Equal(t, DefaultBrowserCheckEnabled, cfg.BrowserCheckEnabled)
	})

	t.Run("environment variables override file configuration", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		// Set file values
		devConfigContent := `
PORT=3000
COGNITO_USER_POOL_ID=file-pool
COGNITO_CLIENT_ID=file-client-id
COGNITO_CLIENT_SECRET=file-client-secret
AWS_REGION=us-east-1
MONGO_URI=file_mongo_uri
`
		createTempConfigFile(t, ".env.dev", devConfigContent)

		// Set environment variables that should take precedence
		t.Setenv("PORT", "9090")
		t.Setenv("MONGO_URI", "env_mongo_uri")
		t.Setenv("LOGIN_TIMEOUT_SECONDS", "99")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_mongo_uri", cfg.MongoURI)
		assert.Equal(t, "file-pool", cfg.CognitoUserPoolID) // This was not overridden by env
		assert.Equal(t, 99, cfg.LoginTimeoutSeconds)
	})

	t.Run("falls back to default on invalid login timeout", func(t *testing.T) {
		cleanup := setupTestEnv(t)
		defer cleanup()

		setRequiredEnvVars(t)
		t.Setenv("LOGIN_TIMEOUT_SECONDS", "-3")

		cfg := Load()

		assert.Equal(t, DefaultLoginTimeoutSeconds, cfg.LoginTimeoutSeconds)
	})
}

// TestLoad_FatalOnMissingKeys tests the fatal error handling when required keys are missing.
// It works by re-running the test in a separate process.
func TestLoad_FatalOnMissingKeys(t *testing.T) {
	// This map defines test cases for each required key.
	// The key is the missing environment variable, and the value is the expected error message.
	testCases := map[string]string{
		"COGNITO_USER_POOL_ID":  "Missing required config: COGNITO_USER_POOL_ID",
		"COGNITO_CLIENT_ID":     "Missing required config: COGNITO_CLIENT_ID",
		"COGNITO_CLIENT_SECRET": "Missing required config: COGNITO_CLIENT_SECRET",
		"AWS_REGION":            "Missing required config: AWS_REGION",
		"MONGO_URI":             "Missing required config: MONGO_URI",
	}

	for missingKey, expectedErr := range testCases {
		t.Run(fmt.Sprintf("missing_%s", missingKey), func(t *testing.T) {
			// This is the sub-process that will actually run the code and crash.
			if os.Getenv("GO_TEST_FATAL") == "1" {
				Load()
				return // Should not be reached
			}

			// This is the main test process. It executes the sub-process.
			cmd := exec.Command(os.Args[0], "-test.run", t.Name())
			cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")

			// Set all required keys EXCEPT the one we're testing for.
			for key := range testCases {
				if key != missingKey {
					cmd.Env = append(cmd.Env, fmt.Sprintf("%s=some_value", key))
				}
			}

			// Run the command and capture the output.
			// We expect it to exit with a non-zero status code.
			output, err := cmd.CombinedOutput()

			// Check that the process exited as expected.
			exitErr, ok := err.(*exec.ExitError)
			require.True(t, ok, "Expected command to exit with an error")
			assert.False(t, exitErr.Success(), "Expected command to fail")

			// Check that the output contains our expected fatal error message.
			assert.True(t, strings.Contains(string(output), expectedErr), "Expected output to contain '%s', got '%s'", expectedErr, string(output))
		})
	}
}

func Test_getEnv(t *testing.T) {
	t.Run("returns value if env var is set", func(t *testing.T) {
		key := "TEST_GETENV_KEY"
		expectedValue := "my-test-value"
		t.Setenv(key, expectedValue)

		val := getEnv(key, "fallback")
		assert.Equal(t, expectedValue, val)
	})

	t.Run("returns fallback if env var is not set", func(t *testing.T) {
		key := "TEST_GETENV_UNSET_KEY"
		fallbackValue := "my-fallback-value"

		val := getEnv(key, fallbackValue)
		assert.Equal(t, fallbackValue, val)
	})

	t.Run("returns fallback if env var is set but empty", func(t *testing.T) {
		key := "TEST_GETENV_EMPTY_KEY"
		fallbackValue := "my-fallback-value"
		t.Setenv(key, "")

		val := getEnv(key, fallbackValue)
		assert.Equal(t, fallbackValue, val)
	})
}
