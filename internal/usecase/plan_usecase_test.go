package usecase

import (
	"strconv"
	"testing"
	"time"

	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type planFixture struct {
	db        *gorm.DB
	uc        *PlanUsecase
	org       *model.Organization
	objective *model.StrategicObjective
	planner   *model.User
	evaluator *model.User
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	db := testutil.NewDB(t)

	org := model.Organization{Name: "Planning Desk", Type: model.OrgTypeDesk}
	require.NoError(t, db.Create(&org).Error)

	obj := model.StrategicObjective{Title: "Access", Weight: 40, IsDefault: true}
	require.NoError(t, db.Create(&obj).Error)

	planner := model.User{Name: "Planner", Username: "planner", Password: "x"}
	require.NoError(t, db.Create(&planner).Error)
	require.NoError(t, db.Create(&model.OrganizationUser{UserID: planner.ID, OrganizationID: org.ID, Role: model.RolePlanner}).Error)

	evaluator := model.User{Name: "Evaluator", Username: "evaluator", Password: "x"}
	require.NoError(t, db.Create(&evaluator).Error)
	require.NoError(t, db.Create(&model.OrganizationUser{UserID: evaluator.ID, OrganizationID: org.ID, Role: model.RoleEvaluator}).Error)

	uc := NewPlanUsecase(db,
		repository.NewPlanRepository(db),
		repository.NewObjectiveRepository(db),
		repository.NewUserRepository(db),
		nil,
	)

	return &planFixture{db: db, uc: uc, org: &org, objective: &obj, planner: &planner, evaluator: &evaluator}
}

func (f *planFixture) newPlan(t *testing.T) *model.Plan {
	t.Helper()
	plan := &model.Plan{
		OrganizationID:       f.org.ID,
		PlannerName:          "Planner",
		Type:                 model.PlanTypeLEOEO,
		StrategicObjectiveID: f.objective.ID,
		FiscalYear:           "2026",
		FromDate:             time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		ToDate:               time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.uc.Create(plan))
	return plan
}

func TestPlanCreateValidation(t *testing.T) {
	f := newPlanFixture(t)

	bad := &model.Plan{
		OrganizationID:       f.org.ID,
		StrategicObjectiveID: f.objective.ID,
		FromDate:             time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		ToDate:               time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.ErrorIs(t, f.uc.Create(bad), ErrDateRange)

	noObjective := &model.Plan{
		OrganizationID: f.org.ID,
		FromDate:       time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.ErrorIs(t, f.uc.Create(noObjective), ErrMissingObjective)

	plan := f.newPlan(t)
	assert.Equal(t, model.PlanDraft, plan.Status)
}

func TestPlanSubmit(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)

	submitted, err := f.uc.Submit(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlanSubmitted, submitted.Status)
	require.NotNil(t, submitted.SubmittedAt)

	// Submitting again is rejected.
	_, err = f.uc.Submit(plan.ID)
	assert.ErrorIs(t, err, ErrOnlyDraftSubmit)
}

func TestPlanSubmitDuplicateGuard(t *testing.T) {
	f := newPlanFixture(t)
	first := f.newPlan(t)
	_, err := f.uc.Submit(first.ID)
	require.NoError(t, err)

	// A second draft for the same (organization, objective) pair cannot be
	// submitted while the first is active.
	second := f.newPlan(t)
	_, err = f.uc.Submit(second.ID)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	// A rejected first plan frees the pair up again.
	_, err = f.uc.Reject(first.ID, f.evaluator.ID, "not aligned")
	require.NoError(t, err)
	_, err = f.uc.Submit(second.ID)
	assert.NoError(t, err)
}

func TestPlanSubmittedAtSetOnce(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)

	submitted, err := f.uc.Submit(plan.ID)
	require.NoError(t, err)
	firstStamp := *submitted.SubmittedAt

	_, err = f.uc.Reject(plan.ID, f.evaluator.ID, "redo")
	require.NoError(t, err)

	// Back to draft and resubmit; the original stamp survives.
	require.NoError(t, f.db.Model(&model.Plan{}).Where("id = ?", plan.ID).Update("status", model.PlanDraft).Error)
	resubmitted, err := f.uc.Submit(plan.ID)
	require.NoError(t, err)
	assert.True(t, resubmitted.SubmittedAt.Equal(firstStamp))
}

func TestPlanApprove(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)
	_, err := f.uc.Submit(plan.ID)
	require.NoError(t, err)

	approved, err := f.uc.Approve(plan.ID, f.evaluator.ID, "looks good")
	require.NoError(t, err)
	assert.Equal(t, model.PlanApproved, approved.Status)

	var reviews []model.PlanReview
	require.NoError(t, f.db.Where("plan_id = ?", plan.ID).Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, model.PlanApproved, reviews[0].Status)
	assert.Equal(t, "looks good", reviews[0].Feedback)
	require.NotNil(t, reviews[0].EvaluatorID)
}

func TestPlanReviewRequiresSubmitted(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)

	// Approving a draft fails and must leave no review behind.
	_, err := f.uc.Approve(plan.ID, f.evaluator.ID, "")
	assert.ErrorIs(t, err, ErrOnlySubmittedReview)

	var count int64
	f.db.Model(&model.PlanReview{}).Where("plan_id = ?", plan.ID).Count(&count)
	assert.Zero(t, count)

	stored, err := f.uc.plans.GetByID(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlanDraft, stored.Status)
}

func TestPlanReviewRequiresEvaluator(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)
	_, err := f.uc.Submit(plan.ID)
	require.NoError(t, err)

	// The planner holds no evaluator membership.
	_, err = f.uc.Approve(plan.ID, f.planner.ID, "")
	assert.ErrorIs(t, err, ErrNotEvaluator)

	stored, err := f.uc.plans.GetByID(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlanSubmitted, stored.Status)
}

func TestPendingReviews(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)
	_, err := f.uc.Submit(plan.ID)
	require.NoError(t, err)

	// Evaluators see every submitted plan.
	pending, err := f.uc.PendingReviews(f.evaluator.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, plan.ID, pending[0].ID)

	// Planners only see their own organizations.
	pending, err = f.uc.PendingReviews(f.planner.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	// A user with no memberships sees nothing.
	outsider := model.User{Name: "Outsider", Username: "outsider", Password: "x"}
	require.NoError(t, f.db.Create(&outsider).Error)
	pending, err = f.uc.PendingReviews(outsider.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestResolveSelectedObjectives(t *testing.T) {
	f := newPlanFixture(t)

	second := model.StrategicObjective{Title: "Capacity", Weight: 35, IsDefault: true}
	require.NoError(t, f.db.Create(&second).Error)

	plan := f.newPlan(t)
	plan.SelectedObjectivesWeights = map[string]float64{
		formatID(f.objective.ID): 60,
		formatID(second.ID):      40,
		"not-a-number":           10, // skipped, not fatal
		"999999":                 5,  // missing objective, skipped
	}
	require.NoError(t, f.uc.Update(plan))

	stored, err := f.uc.plans.GetByID(plan.ID)
	require.NoError(t, err)
	ids := make([]uint, 0, len(stored.SelectedObjectives))
	for _, o := range stored.SelectedObjectives {
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []uint{f.objective.ID, second.ID}, ids)
}

func TestResolveSelectedObjectivesFallsBackToPrimary(t *testing.T) {
	f := newPlanFixture(t)
	plan := f.newPlan(t)

	stored, err := f.uc.plans.GetByID(plan.ID)
	require.NoError(t, err)
	require.Len(t, stored.SelectedObjectives, 1)
	assert.Equal(t, f.objective.ID, stored.SelectedObjectives[0].ID)
}
