package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"lg/fitplan-go-api/internal/planner"
)

// Sheet names in the exported workbook.
const (
	sheetSummary  = "Summary"
	sheetMeals    = "Meals"
	sheetWorkouts = "Workouts"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportPlan computes a plan and returns it as an .xlsx download.
// POST /api/plan/export. Same body and error responses as POST /api/plan.
func (h *Handler) exportPlan(c *gin.Context) {
	res, ok := h.computePlan(c)
	if !ok {
		return
	}

	f, err := buildPlanWorkbook(res)
	if err != nil {
		h.planError(c, fmt.Errorf("build workbook: %w", err))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.planError(c, fmt.Errorf("write workbook: %w", err))
		return
	}

	h.metrics.exportsTotal.Inc()
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="fitplan-%s.xlsx"`, res.Profile.Goal))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// buildPlanWorkbook lays a plan out over three sheets: profile and metrics,
// the meal plan with totals, and one row per workout block.
func buildPlanWorkbook(res *planner.Result) (_ *excelize.File, err error) {
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			f.Close()
		}
	}()
	f.SetSheetName("Sheet1", sheetSummary)
	if _, err := f.NewSheet(sheetMeals); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetWorkouts); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, res, headerStyle); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeMealsSheet(f, res.MealPlan, headerStyle); err != nil {
		return nil, fmt.Errorf("meals sheet: %w", err)
	}
	if err := writeWorkoutsSheet(f, res, headerStyle); err != nil {
		return nil, fmt.Errorf("workouts sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSummarySheet(f *excelize.File, res *planner.Result, headerStyle int) error {
	p, m := res.Profile, res.Metrics
	rows := [][]any{
		{"Field", "Value"},
		{"Sex", string(p.Sex)},
		{"Age", p.Age},
		{"Height (cm)", p.HeightCM},
		{"Weight (kg)", p.WeightKG},
		{"Target weight (kg)", p.TargetWeightKG},
		{"Timeframe (weeks)", p.Weeks},
		{"Activity", string(p.Activity)},
		{"Goal", string(p.Goal)},
		{"Diet", string(p.Diet)},
		{"Restrictions", strings.Join(p.Restrictions, ", ")},
		{"Meals per day", p.MealsPerDay},
		{},
		{"BMR (kcal)", m.BMR},
		{"TDEE (kcal)", m.TDEE},
		{"Target calories (kcal)", m.TargetCalories},
		{"Daily change (kcal)", m.DailyChange},
		{"Experience level", res.Level},
	}
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "A", 24)
}

func writeMealsSheet(f *excelize.File, plan planner.MealPlan, headerStyle int) error {
	rows := [][]any{{"#", "Meal", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Tags", "Link"}}
	for i, m := range plan.Meals {
		rows = append(rows, []any{i + 1, m.Name, m.Calories, m.ProteinG, m.CarbsG, m.FatG, strings.Join(m.Tags, ", "), m.Link})
	}
	t := plan.Totals
	rows = append(rows, []any{"", "Total", t.Calories, t.ProteinG, t.CarbsG, t.FatG})

	if err := writeRows(f, sheetMeals, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetMeals, "A1", "H1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheetMeals, "B", "B", 36)
}

func writeWorkoutsSheet(f *excelize.File, res *planner.Result, headerStyle int) error {
	rows := [][]any{{"Workout", "Goal", "Level", "Block", "Sets", "Duration", "Rest", "Tip", "Link"}}
	for _, w := range res.Workouts {
		for _, b := range w.Blocks {
			rows = append(rows, []any{w.Title, w.Goal, w.Level, b.Name, b.Sets, b.Duration, b.Rest, b.Tip, b.Link})
		}
	}
	if err := writeRows(f, sheetWorkouts, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetWorkouts, "A1", "I1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheetWorkouts, "A", "A", 34)
}

// writeRows writes rows starting at A1, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
