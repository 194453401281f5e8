package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilCmd_Use(t *testing.T) {
	assert.Equal(t, "util", utilCmd.Use)
}

func TestUtilCmd_HasSubcommands(t *testing.T) {
	commands := utilCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "email")
	assert.Contains(t, commandNames, "currency")
	assert.Contains(t, commandNames, "tax")
	assert.Contains(t, commandNames, "id")
}

// runUtil executes a util subcommand and returns its output. The util
// helpers never touch the services, but the test stack is installed
// anyway so root wiring stays a no-op.
func runUtil(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cleanup := setupTestServices()
	t.Cleanup(cleanup)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"util"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// Email Tests

func TestUtilEmailCmd_ValidAddress(t *testing.T) {
	out, err := runUtil(t, "email", "alice@example.com")

	assert.NoError(t, err)
	assert.Contains(t, out, "alice@example.com is valid")
}

func TestUtilEmailCmd_MissingAt(t *testing.T) {
	out, err := runUtil(t, "email", "alice.example.com")

	assert.NoError(t, err)
	assert.Contains(t, out, "alice.example.com is invalid")
}

func TestUtilEmailCmd_MissingTLD(t *testing.T) {
	out, err := runUtil(t, "email", "alice@example")

	assert.NoError(t, err)
	assert.Contains(t, out, "alice@example is invalid")
}

// Currency Tests

func TestUtilCurrencyCmd_KnownCode(t *testing.T) {
	out, err := runUtil(t, "currency", "12.34", "EUR")

	assert.NoError(t, err)
	assert.Contains(t, out, "€12.34")
}

func TestUtilCurrencyCmd_UnknownCodeFallsBack(t *testing.T) {
	out, err := runUtil(t, "currency", "5", "XYZ")

	assert.NoError(t, err)
	assert.Contains(t, out, "$5.00")
}

func TestUtilCurrencyCmd_InvalidAmount(t *testing.T) {
	_, err := runUtil(t, "currency", "lots", "USD")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

// Tax Tests

func TestUtilTaxCmd_DefaultRate(t *testing.T) {
	out, err := runUtil(t, "tax", "100")

	assert.NoError(t, err)
	assert.Contains(t, out, "8.00")
}

func TestUtilTaxCmd_ExplicitRate(t *testing.T) {
	out, err := runUtil(t, "tax", "100", "0.2")

	assert.NoError(t, err)
	assert.Contains(t, out, "20.00")
}

func TestUtilTaxCmd_InvalidRate(t *testing.T) {
	_, err := runUtil(t, "tax", "100", "high")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rate")
}

// ID Tests

func TestUtilIDCmd_PositiveInteger(t *testing.T) {
	out, err := runUtil(t, "id", "42")

	assert.NoError(t, err)
	assert.Contains(t, out, "42 is valid")
}

func TestUtilIDCmd_Zero(t *testing.T) {
	out, err := runUtil(t, "id", "0")

	assert.NoError(t, err)
	assert.Contains(t, out, "0 is invalid")
}

func TestUtilIDCmd_Fraction(t *testing.T) {
	out, err := runUtil(t, "id", "1.5")

	assert.NoError(t, err)
	assert.Contains(t, out, "1.5 is invalid")
}

func TestUtilIDCmd_Word(t *testing.T) {
	out, err := runUtil(t, "id", "first")

	assert.NoError(t, err)
	assert.Contains(t, out, "first is invalid")
}
