package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/http/api"
	"github.com/santridev/muslim-companion/internal/http/api/packets"
	"github.com/santridev/muslim-companion/internal/model"
	"github.com/santridev/muslim-companion/internal/quran"
)

// QuranProvider serves chapter and commentary content.
type QuranProvider interface {
	List(ctx context.Context, query string) ([]model.SurahSummary, error)
	Detail(ctx context.Context, number int) (*model.SurahDetail, error)
	Tafsir(ctx context.Context, number int) (*model.SurahTafsir, error)
}

type quranController struct {
	svc QuranProvider
}

// QuranModule mounts the chapter list/detail and commentary endpoints.
func QuranModule(svc QuranProvider) api.Module {
	ctl := &quranController{svc: svc}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/quran/surah", ctl.listSurah)
		c.GET("/quran/surah/:number", ctl.getSurah)
		c.GET("/quran/tafsir/:number", ctl.getTafsir)
	})
}

// GET /api/quran/surah?q=
func (q *quranController) listSurah(ctx *gin.Context) (any, *api.Error) {
	list, err := q.svc.List(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		log.Error().Err(err).Msg("failed to load surah list")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "failed to load chapter list"}
	}
	return packets.SurahListResponse{Total: len(list), Surahs: list}, nil
}

// GET /api/quran/surah/:number
func (q *quranController) getSurah(ctx *gin.Context) (any, *api.Error) {
	number, apiErr := chapterNumber(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	detail, err := q.svc.Detail(ctx.Request.Context(), number)
	if err != nil {
		if errors.Is(err, quran.ErrChapterNotFound) {
			return nil, &api.Error{Code: http.StatusNotFound, Message: "chapter not found"}
		}
		log.Error().Err(err).Int("number", number).Msg("failed to load surah detail")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "failed to load chapter"}
	}
	return detail, nil
}

// GET /api/quran/tafsir/:number
func (q *quranController) getTafsir(ctx *gin.Context) (any, *api.Error) {
	number, apiErr := chapterNumber(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	tafsir, err := q.svc.Tafsir(ctx.Request.Context(), number)
	if err != nil {
		if errors.Is(err, quran.ErrChapterNotFound) {
			return nil, &api.Error{Code: http.StatusNotFound, Message: "chapter not found"}
		}
		log.Error().Err(err).Int("number", number).Msg("failed to load tafsir")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "failed to load commentary"}
	}
	return tafsir, nil
}

func chapterNumber(ctx *gin.Context) (int, *api.Error) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return 0, &api.Error{Code: http.StatusBadRequest, Message: "invalid chapter number"}
	}
	return number, nil
}
