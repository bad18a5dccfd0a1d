package server

import (
	"github.com/gin-gonic/gin"
)

type SpotifyHandler interface {
	TopTracks(ctx *gin.Context)
}
