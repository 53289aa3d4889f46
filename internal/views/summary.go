package views

import (
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/types"
)

type DashboardStats struct {
	ActiveProjects int                  `json:"activeProjects"`
	TotalTasks     int                  `json:"totalTasks"`
	CompletedTasks int                  `json:"completedTasks"`
	TeamMembers    int                  `json:"teamMembers"`
	RecentProjects []repository.Project `json:"recentProjects"`
}

type Analytics struct {
	TotalProjects   int                  `json:"totalProjects"`
	ActiveProjects  int                  `json:"activeProjects"`
	TotalTasks      int                  `json:"totalTasks"`
	CompletedTasks  int                  `json:"completedTasks"`
	CompletionRate  int                  `json:"completionRate"`
	TeamSize        int                  `json:"teamSize"`
	ProjectStatus   []Bucket             `json:"projectStatus"`
	TaskPriority    []Bucket             `json:"taskPriority"`
	ProjectProgress []repository.Project `json:"projectProgress"`
	TeamPerformance []TeamMember         `json:"teamPerformance"`
}

// TeamMember is a registered user with counts derived from the collections.
type TeamMember struct {
	repository.User
	ProjectsCount  int  `json:"projectsCount"`
	TasksCompleted int  `json:"tasksCompleted"`
	OpenTasks      int  `json:"openTasks"`
	Online         bool `json:"online"`
}

// Dashboard summarises the landing page. RecentProjects holds the first
// four projects in collection order.
func Dashboard(projects []repository.Project, tasks []repository.Task, users []repository.User) DashboardStats {
	return DashboardStats{
		ActiveProjects: countProjects(projects, types.ProjectActive),
		TotalTasks:     len(tasks),
		CompletedTasks: countTasks(tasks, types.StatusCompleted),
		TeamMembers:    len(users),
		RecentProjects: firstProjects(projects, 4),
	}
}

func BuildAnalytics(projects []repository.Project, tasks []repository.Task, users []repository.User) Analytics {
	team := TeamMembers(users, projects, tasks)
	if len(team) > 4 {
		team = team[:4]
	}

	return Analytics{
		TotalProjects:   len(projects),
		ActiveProjects:  countProjects(projects, types.ProjectActive),
		TotalTasks:      len(tasks),
		CompletedTasks:  countTasks(tasks, types.StatusCompleted),
		CompletionRate:  CompletionRate(tasks),
		TeamSize:        len(users),
		ProjectStatus:   ProjectStatusHistogram(projects),
		TaskPriority:    TaskPriorityHistogram(tasks),
		ProjectProgress: firstProjects(projects, 3),
		TeamPerformance: team,
	}
}

// TeamMembers derives per-user counts: projects whose team lists the user
// and tasks assigned to them.
func TeamMembers(users []repository.User, projects []repository.Project, tasks []repository.Task) []TeamMember {
	members := make([]TeamMember, len(users))
	for i, u := range users {
		m := TeamMember{User: u}
		for _, p := range projects {
			for _, tm := range p.Team {
				if tm.ID == u.ID {
					m.ProjectsCount++
					break
				}
			}
		}
		for _, t := range tasks {
			if t.Assignee == nil || t.Assignee.ID != u.ID {
				continue
			}
			if t.Status == types.StatusCompleted {
				m.TasksCompleted++
			} else {
				m.OpenTasks++
			}
		}
		members[i] = m
	}
	return members
}

// FilterTeam keeps members whose name or email contains search.
func FilterTeam(members []TeamMember, search string) []TeamMember {
	q := strings.ToLower(search)
	out := make([]TeamMember, 0, len(members))
	for _, m := range members {
		if containsFold(q, m.Name, m.Email) {
			out = append(out, m)
		}
	}
	return out
}

// FilterProjects keeps projects whose name or description contains search
// and whose status matches. "" and "all" match any status.
func FilterProjects(projects []repository.Project, search, status string) []repository.Project {
	q := strings.ToLower(search)
	out := make([]repository.Project, 0, len(projects))
	for _, p := range projects {
		if !containsFold(q, p.Name, p.Description) {
			continue
		}
		if status != "" && status != types.FilterAll && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func UnreadCount(notifications []repository.Notification) int {
	n := 0
	for _, x := range notifications {
		if !x.Read {
			n++
		}
	}
	return n
}

// DaysUntil counts whole calendar days from now to t in loc; negative when t
// has passed.
func DaysUntil(t, now time.Time, loc *time.Location) int {
	ty, tm, td := t.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}

func countProjects(projects []repository.Project, status string) int {
	n := 0
	for _, p := range projects {
		if p.Status == status {
			n++
		}
	}
	return n
}

func countTasks(tasks []repository.Task, status string) int {
	n := 0
	for _, t := range tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

func firstProjects(projects []repository.Project, n int) []repository.Project {
	if len(projects) < n {
		n = len(projects)
	}
	return append([]repository.Project{}, projects[:n]...)
}
