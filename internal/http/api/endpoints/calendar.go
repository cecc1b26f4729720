package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santridev/muslim-companion/internal/hijri"
	"github.com/santridev/muslim-companion/internal/http/api"
	"github.com/santridev/muslim-companion/internal/http/api/packets"
)

type calendarController struct {
	now func() time.Time
}

// CalendarModule mounts the month grid endpoint.
func CalendarModule() api.Module {
	ctl := &calendarController{now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/calendar", ctl.getMonthGrid)
	})
}

// GET /api/calendar?year=&month=
// Both parameters default to the current month. Month is 1..12. The grid is
// recomputed on every request; navigation forward/backward is just another
// call with different parameters.
func (cc *calendarController) getMonthGrid(ctx *gin.Context) (any, *api.Error) {
	today := cc.now()
	year := today.Year()
	month := int(today.Month())

	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 9999 {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid year"}
		}
		year = parsed
	}
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid month"}
		}
		month = parsed
	}

	cells := hijri.BuildMonthGrid(year, time.Month(month), today)
	return packets.CalendarResponse{
		Year:  year,
		Month: month,
		Cells: cells,
	}, nil
}
