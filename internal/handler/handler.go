package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samylovma/travel-agent/internal/model"
	"github.com/samylovma/travel-agent/internal/repository"
)

// TravelGetter читает путешествия для HTTP-выдачи.
type TravelGetter interface {
	GetByID(id int64) (*model.Travel, error)
}

// LocationLister читает точки маршрута для HTTP-выдачи.
type LocationLister interface {
	ListByTravel(travelID int64) ([]model.Location, error)
}

// Handler структурирует зависимости для обработки HTTP-запросов.
// API только читает: вся запись идет через бота.
type Handler struct {
	travels   TravelGetter
	locations LocationLister
}

// NewHandler создает новый Handler с внедрением зависимостей.
func NewHandler(travels TravelGetter, locations LocationLister) *Handler {
	return &Handler{travels: travels, locations: locations}
}

// GetTravel обработчик для GET /api/travels/:id - возвращает путешествие.
func (h *Handler) GetTravel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор"})
		return
	}
	travel, err := h.travels.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Путешествие не найдено"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить путешествие"})
		return
	}
	c.JSON(http.StatusOK, travel)
}

// GetTravelLocations обработчик для GET /api/travels/:id/locations -
// возвращает точки маршрута путешествия по возрастанию даты начала.
func (h *Handler) GetTravelLocations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор"})
		return
	}
	locations, err := h.locations.ListByTravel(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить точки маршрута"})
		return
	}
	c.JSON(http.StatusOK, locations)
}
