// ABOUTME: MCP tool implementations for the nutrition journal.
// ABOUTME: Provides CRUD operations for foods, tables, entries, summaries.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/nosh/internal/models"
	"github.com/harperreed/nosh/internal/storage"
	"github.com/harperreed/nosh/internal/summaries"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// create_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_food",
		Description: "Add a food to the catalog",
	}, s.handleCreateFood)

	// list_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_foods",
		Description: "List foods in the catalog with their nutritional tables",
	}, s.handleListFoods)

	// delete_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_food",
		Description: "Delete a food (soft-deleted if journal entries reference it)",
	}, s.handleDeleteFood)

	// create_table
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_table",
		Description: "Add a nutritional table (macros per base measure of a unit) to a food",
	}, s.handleCreateTable)

	// list_tables
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_tables",
		Description: "List a food's nutritional tables",
	}, s.handleListTables)

	// log_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Log an amount of a food eaten at a meal on a date",
	}, s.handleLogEntry)

	// list_entries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List journal entries for a date",
	}, s.handleListEntries)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a journal entry by id",
	}, s.handleDeleteEntry)

	// get_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_summary",
		Description: "Get per-meal and whole-day macro totals for a date",
	}, s.handleGetSummary)
}

// Tool input/output types

type createFoodInput struct {
	Name string `json:"name" jsonschema:"description=Food name (unique among live foods),required"`
}

type foodOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listFoodsInput struct {
	IncludeDeleted bool `json:"include_deleted,omitempty" jsonschema:"description=Include soft-deleted foods"`
}

type deleteFoodInput struct {
	ID int64 `json:"id" jsonschema:"description=Food id,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type createTableInput struct {
	FoodID      int64   `json:"food_id" jsonschema:"description=Food id,required"`
	Unit        string  `json:"unit" jsonschema:"description=Unit symbol (g, ml, lb, tsp, tbsp, cup, oz, unit),required"`
	BaseMeasure float64 `json:"base_measure" jsonschema:"description=Base measure the macros are defined per,required"`
	Kcals       float64 `json:"kcals" jsonschema:"description=Calories per base measure"`
	Protein     float64 `json:"protein" jsonschema:"description=Protein grams per base measure"`
	Carbs       float64 `json:"carbs" jsonschema:"description=Carb grams per base measure"`
	Fats        float64 `json:"fats" jsonschema:"description=Fat grams per base measure"`
}

type tableOutput struct {
	ID      int64  `json:"id"`
	FoodID  int64  `json:"food_id"`
	Unit    string `json:"unit"`
	Message string `json:"message"`
}

type listTablesInput struct {
	FoodID int64 `json:"food_id" jsonschema:"description=Food id,required"`
}

type logEntryInput struct {
	FoodID       int64   `json:"food_id" jsonschema:"description=Food id,required"`
	NutritableID int64   `json:"nutritable_id" jsonschema:"description=Nutritional table id to scale against,required"`
	Amount       float64 `json:"amount" jsonschema:"description=Amount eaten in the table's unit,required"`
	Meal         string  `json:"meal" jsonschema:"description=Meal slot (breakfast, morning, lunch, afternoon, dinner),required"`
	Date         string  `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type entryOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type listEntriesInput struct {
	Date string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	Meal string `json:"meal,omitempty" jsonschema:"description=Filter by meal slot"`
}

type deleteEntryInput struct {
	ID int64 `json:"id" jsonschema:"description=Entry id,required"`
}

type getSummaryInput struct {
	Date string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

// Tool handlers

func (s *Server) handleCreateFood(ctx context.Context, req *mcp.CallToolRequest, input createFoodInput) (*mcp.CallToolResult, foodOutput, error) {
	food, err := s.repo.CreateFood(input.Name)
	if err != nil {
		return nil, foodOutput{}, fmt.Errorf("failed to create food: %w", err)
	}

	return nil, foodOutput{
		ID:      food.ID,
		Name:    food.Name,
		Message: fmt.Sprintf("Added food %q (id %d)", food.Name, food.ID),
	}, nil
}

func (s *Server) handleListFoods(ctx context.Context, req *mcp.CallToolRequest, input listFoodsInput) (*mcp.CallToolResult, any, error) {
	foods, err := s.repo.ListFoods(input.IncludeDeleted)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list foods: %w", err)
	}

	if len(foods) == 0 {
		return nil, map[string]interface{}{"message": "No foods found."}, nil
	}

	type foodWithTables struct {
		*models.Food
		Tables []*models.Nutritable `json:"tables"`
	}

	result := make([]foodWithTables, 0, len(foods))
	for _, f := range foods {
		tables, err := s.repo.ListNutritablesByFood(f.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list tables: %w", err)
		}
		result = append(result, foodWithTables{Food: f, Tables: tables})
	}

	return nil, result, nil
}

func (s *Server) handleDeleteFood(ctx context.Context, req *mcp.CallToolRequest, input deleteFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteFood(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete food: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted food %d", input.ID),
	}, nil
}

func (s *Server) handleCreateTable(ctx context.Context, req *mcp.CallToolRequest, input createTableInput) (*mcp.CallToolResult, tableOutput, error) {
	unit, ok := models.UnitBySymbol(input.Unit)
	if !ok {
		return nil, tableOutput{}, fmt.Errorf("unknown unit: %s", input.Unit)
	}

	table, err := s.repo.CreateNutritable(storage.NutritableInput{
		FoodID:      input.FoodID,
		UnitID:      unit.ID,
		BaseMeasure: input.BaseMeasure,
		Kcals:       input.Kcals,
		Carbs:       input.Carbs,
		Fats:        input.Fats,
		Protein:     input.Protein,
	})
	if err != nil {
		return nil, tableOutput{}, fmt.Errorf("failed to create table: %w", err)
	}

	return nil, tableOutput{
		ID:      table.ID,
		FoodID:  table.FoodID,
		Unit:    table.Unit.Symbol,
		Message: fmt.Sprintf("Added table %d: per %g %s", table.ID, table.BaseMeasure, table.Unit.Symbol),
	}, nil
}

func (s *Server) handleListTables(ctx context.Context, req *mcp.CallToolRequest, input listTablesInput) (*mcp.CallToolResult, any, error) {
	tables, err := s.repo.ListNutritablesByFood(input.FoodID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tables: %w", err)
	}

	if len(tables) == 0 {
		return nil, map[string]interface{}{"message": "No tables found."}, nil
	}

	return nil, tables, nil
}

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, entryOutput, error) {
	mealID, ok := models.MealIDByName(input.Meal)
	if !ok {
		return nil, entryOutput{}, fmt.Errorf("unknown meal: %s", input.Meal)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, entryOutput{}, err
	}

	entry, err := s.repo.CreateEntry(storage.EntryInput{
		FoodID:       input.FoodID,
		NutritableID: input.NutritableID,
		Date:         date,
		Amount:       input.Amount,
		MealID:       mealID,
	})
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log entry: %w", err)
	}

	return nil, entryOutput{
		ID:      entry.ID,
		Message: fmt.Sprintf("Logged %g at %s on %s (id %d)", entry.Amount, input.Meal, entry.Date.Format(models.DateOnly), entry.ID),
	}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	var entries []models.Entry
	if input.Meal != "" {
		mealID, ok := models.MealIDByName(input.Meal)
		if !ok {
			return nil, nil, fmt.Errorf("unknown meal: %s", input.Meal)
		}
		entries, err = s.repo.ListEntriesByMealAndDate(date, mealID)
	} else {
		entries, err = s.repo.ListEntriesByDate(date)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No entries found."}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteEntry(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted entry %d", input.ID),
	}, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, input getSummaryInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	result, err := summaries.ComputeForDate(s.repo, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute summaries: %w", err)
	}

	return nil, map[string]interface{}{
		"date":      date.Format(models.DateOnly),
		"summaries": result.Rounded(),
	}, nil
}

// parseDate parses a YYYY-MM-DD tool input, defaulting to today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return models.Day(time.Now()), nil
	}
	t, err := models.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
