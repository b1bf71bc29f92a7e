package controllers

import (
	"net/http"
	"time"

	"github.com/Rameshwarsp7900/non-veg/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type CalendarWSController struct {
	RT *services.RealtimeHub
}

func NewCalendarWSController(rt *services.RealtimeHub) *CalendarWSController {
	return &CalendarWSController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// CalendarWS attaches a client session to the user's fanout set; it
// receives day.updated / rules.updated frames until the socket closes.
func (cc *CalendarWSController) CalendarWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	cc.RT.Register(cl)

	// ping to keep connections alive through some proxies; routed
	// through the client's serialized writer so it cannot collide
	// with a hub broadcast.
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Write(websocket.PingMessage, nil); err != nil {
				cc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cc.RT.Unregister(cl)
			return
		}
	}
}
