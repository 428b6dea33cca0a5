// Provides platform-appropriate paths for NDK discovery.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows, matching where Android Studio installs SDK
// components on each host.
package paths
