package usecase

import (
	"errors"
	"log"
	"strconv"
	"time"

	"planning-backend/internal/mailer"
	"planning-backend/internal/model"
	"planning-backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrDateRange           = errors.New("end date must be after start date")
	ErrMissingObjective    = errors.New("at least one of strategic objective or program must be specified")
	ErrOnlyDraftSubmit     = errors.New("only draft plans can be submitted")
	ErrOnlySubmittedReview = errors.New("only submitted plans can be reviewed")
	ErrDuplicateSubmission = errors.New("a plan for this organization and strategic objective has already been submitted or approved")
	ErrNotEvaluator        = errors.New("only evaluators can review plans")
)

// PlanUsecase drives the plan lifecycle: DRAFT -> SUBMITTED -> APPROVED or
// REJECTED. APPROVED and REJECTED are terminal.
type PlanUsecase struct {
	db         *gorm.DB
	plans      repository.PlanRepository
	objectives repository.ObjectiveRepository
	users      repository.UserRepository
	mail       *mailer.Mailer
}

func NewPlanUsecase(db *gorm.DB, plans repository.PlanRepository, objectives repository.ObjectiveRepository, users repository.UserRepository, mail *mailer.Mailer) *PlanUsecase {
	return &PlanUsecase{db: db, plans: plans, objectives: objectives, users: users, mail: mail}
}

// Create stores a new plan in DRAFT and records the current objective
// selection.
func (u *PlanUsecase) Create(plan *model.Plan) error {
	if err := u.validatePlan(plan); err != nil {
		return err
	}
	plan.Status = model.PlanDraft
	if err := u.plans.Create(plan); err != nil {
		return err
	}
	selected, err := u.ResolveSelectedObjectives(plan)
	if err != nil {
		return err
	}
	return u.plans.ReplaceSelectedObjectives(plan, selected)
}

func (u *PlanUsecase) Update(plan *model.Plan) error {
	if err := u.validatePlan(plan); err != nil {
		return err
	}
	if err := u.plans.Update(plan); err != nil {
		return err
	}
	selected, err := u.ResolveSelectedObjectives(plan)
	if err != nil {
		return err
	}
	return u.plans.ReplaceSelectedObjectives(plan, selected)
}

func (u *PlanUsecase) validatePlan(plan *model.Plan) error {
	if !plan.ToDate.After(plan.FromDate) {
		return ErrDateRange
	}
	if plan.StrategicObjectiveID == 0 && plan.ProgramID == nil {
		return ErrMissingObjective
	}
	return nil
}

// ResolveSelectedObjectives is the single source of the objective set that
// belongs to a plan: the objectives named in the plan's own weight map, or
// the primary objective when the map is empty. Create, update and submit all
// go through here so the selection cannot drift between call sites.
func (u *PlanUsecase) ResolveSelectedObjectives(plan *model.Plan) ([]model.StrategicObjective, error) {
	var selected []model.StrategicObjective
	for key := range plan.SelectedObjectivesWeights {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			log.Printf("plan %d: skipping malformed objective key %q in weight map", plan.ID, key)
			continue
		}
		obj, err := u.objectives.GetByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("plan %d: selected objective %d no longer exists", plan.ID, id)
				continue
			}
			return nil, err
		}
		selected = append(selected, *obj)
	}
	if len(selected) == 0 && plan.StrategicObjectiveID != 0 {
		obj, err := u.objectives.GetByID(plan.StrategicObjectiveID)
		if err != nil {
			return nil, err
		}
		selected = append(selected, *obj)
	}
	return selected, nil
}

// Submit moves a DRAFT plan to SUBMITTED, freezing the objective selection
// and stamping submitted_at exactly once.
func (u *PlanUsecase) Submit(planID uint) (*model.Plan, error) {
	plan, err := u.plans.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != model.PlanDraft {
		return nil, ErrOnlyDraftSubmit
	}

	exists, err := u.plans.HasActivePlan(plan.OrganizationID, plan.StrategicObjectiveID, plan.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	selected, err := u.ResolveSelectedObjectives(plan)
	if err != nil {
		return nil, err
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(plan).Association("SelectedObjectives").Replace(selected); err != nil {
			return err
		}
		plan.Status = model.PlanSubmitted
		if plan.SubmittedAt == nil {
			now := time.Now()
			plan.SubmittedAt = &now
		}
		return tx.Save(plan).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Approve records an APPROVED review and moves the plan to its terminal
// state; both happen in one transaction or not at all.
func (u *PlanUsecase) Approve(planID, actorUserID uint, feedback string) (*model.Plan, error) {
	return u.review(planID, actorUserID, feedback, model.PlanApproved)
}

// Reject is symmetric to Approve with terminal state REJECTED.
func (u *PlanUsecase) Reject(planID, actorUserID uint, feedback string) (*model.Plan, error) {
	return u.review(planID, actorUserID, feedback, model.PlanRejected)
}

func (u *PlanUsecase) review(planID, actorUserID uint, feedback, decision string) (*model.Plan, error) {
	plan, err := u.plans.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != model.PlanSubmitted {
		return nil, ErrOnlySubmittedReview
	}

	evaluator, err := u.evaluatorRecord(actorUserID)
	if err != nil {
		return nil, err
	}

	err = u.db.Transaction(func(tx *gorm.DB) error {
		review := model.PlanReview{
			PlanID:      plan.ID,
			EvaluatorID: &evaluator.ID,
			Status:      decision,
			Feedback:    feedback,
			ReviewedAt:  time.Now(),
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		plan.Status = decision
		return tx.Save(plan).Error
	})
	if err != nil {
		return nil, err
	}

	u.notify(plan, decision, feedback)
	return plan, nil
}

// evaluatorRecord finds the acting user's EVALUATOR (or ADMIN) membership.
func (u *PlanUsecase) evaluatorRecord(userID uint) (*model.OrganizationUser, error) {
	memberships, err := u.users.GetMemberships(userID)
	if err != nil {
		return nil, err
	}
	for _, m := range memberships {
		if m.Role == model.RoleEvaluator || m.Role == model.RoleAdmin {
			rec := m
			return &rec, nil
		}
	}
	return nil, ErrNotEvaluator
}

// PendingReviews lists SUBMITTED plans visible to the actor. Evaluators and
// admins see everything; planners only their own organizations.
func (u *PlanUsecase) PendingReviews(actorUserID uint) ([]model.Plan, error) {
	roles, err := u.users.GetRoles(actorUserID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if role == model.RoleEvaluator || role == model.RoleAdmin {
			return u.plans.ListByStatus(model.PlanSubmitted, nil)
		}
	}
	orgIDs, err := u.users.GetOrganizationIDs(actorUserID)
	if err != nil {
		return nil, err
	}
	if len(orgIDs) == 0 {
		return []model.Plan{}, nil
	}
	return u.plans.ListByStatus(model.PlanSubmitted, orgIDs)
}

// notify emails the planner about the decision. Best effort; a mail failure
// never rolls back a review.
func (u *PlanUsecase) notify(plan *model.Plan, decision, feedback string) {
	if u.mail == nil || !u.mail.Enabled() {
		return
	}
	go func() {
		if err := u.mail.SendReviewDecision(plan, decision, feedback); err != nil {
			log.Printf("failed to send review notification for plan %d: %v", plan.ID, err)
		}
	}()
}
