package version

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

// readVersion reads the VCS revision stamped into the binary by the go toolchain.
func readVersion() VersionResponse {
	version := VersionResponse{Commit: "unknown"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	version.GoVersion = info.GoVersion
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			version.Commit = setting.Value
		}
	}

	return version
}

func SetupRoutes(app *fiber.App) {
	version := readVersion()

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version)
	})
}
