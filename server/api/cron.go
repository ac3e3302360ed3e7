package api

import (
	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

// CronDispatchEndpoint is hit every five minutes by the external
// scheduler, authenticated by CronAuth. It runs the sweeps that must
// not wait for the nightly jobs and reports what it did.
func CronDispatchEndpoint(c echo.Context) error {
	return Success(c, service.JobSrv.Tick())
}
