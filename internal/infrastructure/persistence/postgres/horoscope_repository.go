package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// HoroscopeRepository implementa repositories.HoroscopeRepository.
// Datas são gravadas e filtradas em UTC para que a igualdade funcione em qualquer driver.
type HoroscopeRepository struct {
	db *gorm.DB
}

// NewHoroscopeRepository cria um novo HoroscopeRepository
func NewHoroscopeRepository(db *gorm.DB) repositories.HoroscopeRepository {
	return &HoroscopeRepository{db: db}
}

func (r *HoroscopeRepository) Create(ctx context.Context, horoscope *entities.Horoscope) error {
	model := horoscopeToModel(horoscope)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	horoscope.ID = model.ID
	horoscope.CreatedAt = model.CreatedAt
	horoscope.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *HoroscopeRepository) FindByID(ctx context.Context, id string) (*entities.Horoscope, error) {
	var model HoroscopeModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return horoscopeToEntity(&model), nil
}

func (r *HoroscopeRepository) Update(ctx context.Context, horoscope *entities.Horoscope) error {
	model := horoscopeToModel(horoscope)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	horoscope.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete é uma remoção física
func (r *HoroscopeRepository) Delete(ctx context.Context, id string) error {
	return r.getDB(ctx).Where("id = ?", id).Delete(&HoroscopeModel{}).Error
}

func (r *HoroscopeRepository) List(ctx context.Context, filters repositories.HoroscopeFilters) ([]*entities.Horoscope, error) {
	var models []*HoroscopeModel

	query := r.getDB(ctx).Model(&HoroscopeModel{})

	// Aplicar filtros (todos por igualdade)
	if filters.ZodiacSign != nil {
		query = query.Where("zodiac_sign = ?", strings.ToLower(*filters.ZodiacSign))
	}
	if filters.Type != nil {
		query = query.Where("type = ?", strings.ToLower(*filters.Type))
	}
	if filters.Date != nil {
		query = query.Where("date = ?", filters.Date.UTC())
	}

	if err := query.Order("date DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return horoscopesToEntities(models), nil
}

func (r *HoroscopeRepository) ListForDate(ctx context.Context, horoscopeType entities.HoroscopeType, date time.Time) ([]*entities.Horoscope, error) {
	var models []*HoroscopeModel

	err := r.getDB(ctx).
		Where("type = ? AND date = ?", string(horoscopeType), date.UTC()).
		Order("zodiac_sign ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return horoscopesToEntities(models), nil
}

func (r *HoroscopeRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func horoscopeToModel(h *entities.Horoscope) *HoroscopeModel {
	return &HoroscopeModel{
		BaseModel: BaseModel{
			ID:        h.ID,
			CreatedAt: h.CreatedAt,
			UpdatedAt: h.UpdatedAt,
		},
		ZodiacSign:    h.ZodiacSign.String(),
		Type:          string(h.Type),
		Content:       h.Content,
		Date:          h.Date.UTC(),
		LuckyNumber:   h.LuckyNumber,
		LuckyColor:    h.LuckyColor,
		Mood:          h.Mood,
		Compatibility: h.Compatibility,
	}
}

func horoscopeToEntity(model *HoroscopeModel) *entities.Horoscope {
	return &entities.Horoscope{
		ID:            model.ID,
		ZodiacSign:    entities.ZodiacSign(model.ZodiacSign),
		Type:          entities.HoroscopeType(model.Type),
		Content:       model.Content,
		Date:          model.Date,
		LuckyNumber:   model.LuckyNumber,
		LuckyColor:    model.LuckyColor,
		Mood:          model.Mood,
		Compatibility: model.Compatibility,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func horoscopesToEntities(models []*HoroscopeModel) []*entities.Horoscope {
	result := make([]*entities.Horoscope, 0, len(models))
	for _, model := range models {
		result = append(result, horoscopeToEntity(model))
	}
	return result
}
