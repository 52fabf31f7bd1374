package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix prefixes the name of extension binaries: 'wa foo' runs
// 'wa-foo' when foo is not a built-in command.
const ExtensionPrefix = "wa-"

// extensionEnv returns the environment of an extension: the current one,
// plus the resolved configuration.
func extensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvTransactions+"="+TransactionsFile())
	env = append(env, EnvWallet+"="+WalletFile())
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	for key, value := range map[string]string{
		EnvMethod:        "fifo",
		EnvJurisdiction:  "US",
		EnvShortTermDays: "365",
		EnvTimezone:      "UTC",
	} {
		env = append(env, key+"="+getEnvWithDefault(key, value))
	}
	return env
}

// RunExtension attempts to find and execute an external wa-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	l := logger("extension")
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		l.Debug().Err(err).Str("command", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	l.Debug().Str("path", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
