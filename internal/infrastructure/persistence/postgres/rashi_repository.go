package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// RashiRepository implementa repositories.RashiRepository
type RashiRepository struct {
	db *gorm.DB
}

// NewRashiRepository cria um novo RashiRepository
func NewRashiRepository(db *gorm.DB) repositories.RashiRepository {
	return &RashiRepository{db: db}
}

func (r *RashiRepository) Create(ctx context.Context, rashi *entities.Rashi) error {
	model := rashiToModel(rashi)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	rashi.ID = model.ID
	rashi.CreatedAt = model.CreatedAt
	rashi.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RashiRepository) Update(ctx context.Context, rashi *entities.Rashi) error {
	model := rashiToModel(rashi)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	rashi.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RashiRepository) FindByName(ctx context.Context, name entities.ZodiacSign) (*entities.Rashi, error) {
	var model RashiModel

	err := r.getDB(ctx).Where("name = ?", strings.ToLower(name.String())).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return rashiToEntity(&model), nil
}

// FindByNames resolve vários signos numa única consulta; nomes sem linha ficam fora do mapa
func (r *RashiRepository) FindByNames(ctx context.Context, names []entities.ZodiacSign) (map[entities.ZodiacSign]*entities.Rashi, error) {
	result := make(map[entities.ZodiacSign]*entities.Rashi)
	if len(names) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, name.String())
	}

	var models []*RashiModel
	if err := r.getDB(ctx).Where("name IN ?", keys).Find(&models).Error; err != nil {
		return nil, err
	}

	for _, model := range models {
		rashi := rashiToEntity(model)
		result[rashi.Name] = rashi
	}
	return result, nil
}

func (r *RashiRepository) List(ctx context.Context) ([]*entities.Rashi, error) {
	var models []*RashiModel

	if err := r.getDB(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Rashi, 0, len(models))
	for _, model := range models {
		result = append(result, rashiToEntity(model))
	}
	return result, nil
}

func (r *RashiRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func rashiToModel(rashi *entities.Rashi) *RashiModel {
	return &RashiModel{
		BaseModel: BaseModel{
			ID:        rashi.ID,
			CreatedAt: rashi.CreatedAt,
			UpdatedAt: rashi.UpdatedAt,
		},
		Name:          rashi.Name.String(),
		Description:   rashi.Description,
		Element:       string(rashi.Element),
		RulingPlanet:  rashi.RulingPlanet,
		Traits:        datatypes.NewJSONSlice(nonNil(rashi.Traits)),
		LuckyNumbers:  datatypes.NewJSONSlice(nonNil(rashi.LuckyNumbers)),
		LuckyColors:   datatypes.NewJSONSlice(nonNil(rashi.LuckyColors)),
		Compatibility: datatypes.NewJSONSlice(nonNil(rashi.Compatibility)),
		Dates:         rashi.Dates,
		Symbol:        rashi.Symbol,
	}
}

func rashiToEntity(model *RashiModel) *entities.Rashi {
	return &entities.Rashi{
		ID:            model.ID,
		Name:          entities.ZodiacSign(model.Name),
		Description:   model.Description,
		Element:       entities.Element(model.Element),
		RulingPlanet:  model.RulingPlanet,
		Traits:        nonNil([]string(model.Traits)),
		LuckyNumbers:  nonNil([]int(model.LuckyNumbers)),
		LuckyColors:   nonNil([]string(model.LuckyColors)),
		Compatibility: nonNil([]string(model.Compatibility)),
		Dates:         model.Dates,
		Symbol:        model.Symbol,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// nonNil garante que listas vazias sejam serializadas como [] e não null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
