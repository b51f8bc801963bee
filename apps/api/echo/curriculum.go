package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/elimu/core/curriculum"
)

type (
	PathwayInfo struct {
		Name     curriculum.Pathway `json:"name"`
		Subjects []string           `json:"subjects"`
	}

	LevelInfo struct {
		Level            curriculum.Level `json:"level"`
		Grades           []string         `json:"grades"`
		Subjects         []string         `json:"subjects"`
		OptionalSubjects []string         `json:"optionalSubjects,omitempty"`
		Pathways         []PathwayInfo    `json:"pathways,omitempty"`
	}
)

func (api *schoolApi) curriculum(ctx echo.Context) error {
	levels := curriculum.Levels()
	infos := make([]LevelInfo, 0, len(levels))
	for _, level := range levels {
		info := LevelInfo{
			Level:            level,
			Grades:           curriculum.Grades(level),
			Subjects:         curriculum.Subjects(level),
			OptionalSubjects: curriculum.OptionalSubjects(level),
		}
		for _, p := range curriculum.Pathways(level) {
			info.Pathways = append(info.Pathways, PathwayInfo{Name: p, Subjects: curriculum.PathwaySubjects(p)})
		}
		infos = append(infos, info)
	}
	return ctx.JSON(http.StatusOK, infos)
}
