package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dailyhub/dailyhub/internal/upstream"
)

// ErrMissingNutrients is returned when a food result lacks the nutrient
// entries needed for positional lookup.
var ErrMissingNutrients = errors.New("food result has too few nutrients")

// Positions of each nutrient in the food search result.
const (
	proteinIndex  = 0
	carbsIndex    = 1
	fatIndex      = 2
	caloriesIndex = 3
)

// Nutrient names used by name-keyed lookup.
const (
	energyNutrient  = "Energy"
	proteinNutrient = "Protein"
	carbsNutrient   = "Carbohydrate, by difference"
	fatNutrient     = "Total lipid (fat)"
)

// Nutrition is the macro breakdown of a food.
type Nutrition struct {
	Name          string
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fat           float64
}

// Calories looks up the first food matching query.
func (g *Gateway) Calories(ctx context.Context, food string) (*Nutrition, error) {
	if strings.TrimSpace(food) == "" {
		return nil, validationError("No food provided.")
	}

	foods, err := g.up.Foods.SearchFoods(ctx, food, 1)
	if err != nil {
		return nil, upstreamError("Failed to fetch nutrition data.", err)
	}
	if len(foods) == 0 {
		return nil, notFoundError("Food not found.")
	}

	if g.settings.NutrientLookup == NutrientsByName {
		return nutritionByName(foods[0]), nil
	}
	n, err := nutritionByPosition(foods[0])
	if err != nil {
		return nil, upstreamError("Failed to fetch nutrition data.", err)
	}
	return n, nil
}

func nutritionByPosition(f upstream.Food) (*Nutrition, error) {
	if len(f.Nutrients) <= caloriesIndex {
		return nil, fmt.Errorf("%w: got %d", ErrMissingNutrients, len(f.Nutrients))
	}
	return &Nutrition{
		Name:          f.Description,
		Calories:      f.Nutrients[caloriesIndex].Value,
		Protein:       f.Nutrients[proteinIndex].Value,
		Carbohydrates: f.Nutrients[carbsIndex].Value,
		Fat:           f.Nutrients[fatIndex].Value,
	}, nil
}

// nutritionByName picks nutrients by name. Missing nutrients stay zero.
// Energy is reported in several units; kcal wins.
func nutritionByName(f upstream.Food) *Nutrition {
	n := &Nutrition{Name: f.Description}
	haveCalories := false
	for _, nu := range f.Nutrients {
		switch nu.Name {
		case energyNutrient:
			if !haveCalories || strings.EqualFold(nu.UnitName, "kcal") {
				n.Calories = nu.Value
				haveCalories = strings.EqualFold(nu.UnitName, "kcal")
			}
		case proteinNutrient:
			n.Protein = nu.Value
		case carbsNutrient:
			n.Carbohydrates = nu.Value
		case fatNutrient:
			n.Fat = nu.Value
		}
	}
	return n
}
