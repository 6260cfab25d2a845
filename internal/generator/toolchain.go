package generator

// Toolchain files shipped under Sources/CMake/Toolchains/.
const (
	IOSToolchainFile     = "ios.toolchain.cmake"
	AndroidToolchainFile = "android.toolchain.cmake"
)

const toolchainFlag = "-DCMAKE_TOOLCHAIN_FILE="

// ToolchainArg returns the cmake toolchain-file argument for cross-compiled
// platforms, or "" when the platform builds with the host toolchain. The
// empty string is still passed to cmake as its own argument.
func ToolchainArg(platform, toolchainsDir string) string {
	switch platform {
	case PlatformIOS:
		return toolchainFlag + toolchainsDir + IOSToolchainFile
	case PlatformAndroid:
		return toolchainFlag + toolchainsDir + AndroidToolchainFile
	}
	return ""
}
