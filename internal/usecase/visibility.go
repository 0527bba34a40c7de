package usecase

import (
	"log"
	"strconv"

	"planning-backend/internal/model"
	"planning-backend/internal/repository"
)

// VisibilityResolver decides which catalog entries a plan's organization is
// entitled to see, and materializes a plan's objective tree scoped by that
// rule.
type VisibilityResolver struct {
	initiatives repository.InitiativeRepository
	measures    repository.MeasureRepository
	activities  repository.ActivityRepository
}

func NewVisibilityResolver(initiatives repository.InitiativeRepository, measures repository.MeasureRepository, activities repository.ActivityRepository) *VisibilityResolver {
	return &VisibilityResolver{initiatives: initiatives, measures: measures, activities: activities}
}

// IncludeInitiative applies the default-vs-custom rule: default entries are
// shared with every organization, custom ones only with their owner.
func IncludeInitiative(init *model.StrategicInitiative, orgID uint) bool {
	if init.IsDefault || init.OrganizationID == nil {
		return true
	}
	return *init.OrganizationID == orgID
}

// IncludeNode is the same rule for measures and activities, which mark
// default entries by leaving the organization unset.
func IncludeNode(organizationID *uint, orgID uint) bool {
	return organizationID == nil || *organizationID == orgID
}

// ObjectiveNode is one selected objective with the subtree the plan's
// organization may see.
type ObjectiveNode struct {
	Objective       model.StrategicObjective `json:"objective"`
	EffectiveWeight float64                  `json:"effective_weight"`
	Initiatives     []InitiativeNode         `json:"initiatives"`
}

type InitiativeNode struct {
	Initiative          model.StrategicInitiative  `json:"initiative"`
	PerformanceMeasures []model.PerformanceMeasure `json:"performance_measures"`
	MainActivities      []model.MainActivity       `json:"main_activities"`
}

// PlanTree walks the plan's frozen objective selection and returns the tree
// filtered to default entries plus the plan organization's own. Read-side
// failures on a subtree degrade to a partial node rather than failing the
// whole view; writes never get this leniency.
func (v *VisibilityResolver) PlanTree(plan *model.Plan) []ObjectiveNode {
	orgID := plan.OrganizationID
	orgIDs := []uint{orgID}
	nodes := make([]ObjectiveNode, 0, len(plan.SelectedObjectives))

	for _, obj := range plan.SelectedObjectives {
		node := ObjectiveNode{
			Objective:       obj,
			EffectiveWeight: snapshotWeight(plan, obj),
		}

		objID := obj.ID
		inits, err := v.initiatives.ListVisible(&objID, nil, orgIDs)
		if err != nil {
			log.Printf("plan %d: failed to load initiatives for objective %d: %v", plan.ID, obj.ID, err)
			nodes = append(nodes, node)
			continue
		}

		for _, init := range inits {
			if !IncludeInitiative(&init, orgID) {
				continue
			}
			initNode := InitiativeNode{Initiative: init}

			measures, err := v.measures.ListVisible(init.ID, orgIDs)
			if err != nil {
				log.Printf("plan %d: failed to load measures for initiative %d: %v", plan.ID, init.ID, err)
			} else {
				initNode.PerformanceMeasures = measures
			}

			activities, err := v.activities.ListVisible(init.ID, orgIDs)
			if err != nil {
				log.Printf("plan %d: failed to load activities for initiative %d: %v", plan.ID, init.ID, err)
			} else {
				initNode.MainActivities = activities
			}

			node.Initiatives = append(node.Initiatives, initNode)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// snapshotWeight prefers the weight the planner froze on the plan over the
// objective's current effective weight.
func snapshotWeight(plan *model.Plan, obj model.StrategicObjective) float64 {
	if w, ok := plan.SelectedObjectivesWeights[strconv.FormatUint(uint64(obj.ID), 10)]; ok {
		return w
	}
	return obj.EffectiveWeight()
}
