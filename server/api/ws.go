package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ActivityWsEndpoint streams committed lifecycle events to the browser.
// The token travels as a query parameter since websocket clients cannot
// set headers.
func ActivityWsEndpoint(c echo.Context) error {
	token := GetToken(c)
	if _, found := global.Cache.Get(BuildCacheKeyByToken(token)); !found {
		return Fail(c, 401, "session expired, please login again")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Errorf("websocket upgrade failed: %v", err)
		return err
	}
	service.ActivityHub.Register(conn)

	// reads are only consumed to detect the close
	go func() {
		defer service.ActivityHub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}
