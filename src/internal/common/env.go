package common

import "os"

const trueStr = "true"

// DebugEnvVar forces debug logging when set to "true"
const DebugEnvVar = "GINK_DEBUG"

func IsDebugEnabled() bool {
	return os.Getenv(DebugEnvVar) == trueStr
}
