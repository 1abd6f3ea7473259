package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"performance-review-api/models"
)

// ErrManagerCycle is returned when a manager assignment would make the org
// chart loop back on itself.
var ErrManagerCycle = errors.New("manager assignment would create a cycle in the organization chart")

// OrgService answers organization-chart questions: who reports to whom and
// whether a manager change keeps the chart a forest.
type OrgService struct {
	db *gorm.DB
}

func NewOrgService(db *gorm.DB) *OrgService {
	return &OrgService{db: db}
}

// CheckManagerAssignment verifies that setting managerID as the manager of
// staffID keeps the org chart cycle-free. It walks the proposed manager's
// chain of command upward; the walk is bounded by the staff count, so it
// terminates even against corrupted data.
func (s *OrgService) CheckManagerAssignment(staffID, managerID int) error {
	if staffID == managerID {
		return ErrManagerCycle
	}

	var total int64
	if err := s.db.Model(&models.Staff{}).Count(&total).Error; err != nil {
		return fmt.Errorf("failed to count staff: %w", err)
	}

	current := managerID
	for steps := int64(0); steps < total; steps++ {
		var member models.Staff
		err := s.db.Select("staff_id", "manager_id").
			Where("staff_id = ?", current).
			First(&member).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to walk management chain: %w", err)
		}
		if member.ManagerID == nil {
			return nil
		}
		if *member.ManagerID == staffID {
			return ErrManagerCycle
		}
		current = *member.ManagerID
	}

	// Walked more links than there are staff: the chain already loops.
	return ErrManagerCycle
}

// BuildOrgChart loads all staff and returns the org forest, roots first.
func (s *OrgService) BuildOrgChart() ([]models.OrgChartNode, error) {
	var members []models.Staff
	if err := s.db.Order("name ASC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	return BuildOrgForest(members), nil
}

// BuildOrgForest groups staff by manager and nests direct reports under each
// member. Staff with no manager become roots. Siblings are ordered by name,
// case-insensitively. Members on a cyclic manager chain are unreachable from
// any root and are simply left out rather than looping the build.
func BuildOrgForest(members []models.Staff) []models.OrgChartNode {
	byManager := make(map[int][]models.Staff)
	var roots []models.Staff
	for _, member := range members {
		if member.ManagerID == nil {
			roots = append(roots, member)
		} else {
			byManager[*member.ManagerID] = append(byManager[*member.ManagerID], member)
		}
	}

	visited := make(map[int]bool, len(members))
	return buildNodes(roots, byManager, visited)
}

func buildNodes(level []models.Staff, byManager map[int][]models.Staff, visited map[int]bool) []models.OrgChartNode {
	sort.Slice(level, func(i, j int) bool {
		return strings.ToLower(level[i].Name) < strings.ToLower(level[j].Name)
	})

	nodes := make([]models.OrgChartNode, 0, len(level))
	for _, member := range level {
		if visited[member.StaffID] {
			continue
		}
		visited[member.StaffID] = true
		nodes = append(nodes, models.OrgChartNode{
			StaffID: member.StaffID,
			Name:    member.Name,
			Title:   member.Title,
			Email:   member.Email,
			Reports: buildNodes(byManager[member.StaffID], byManager, visited),
		})
	}
	return nodes
}
