package academics

import "context"

type (
	// Trend decorates a dashboard stat with its movement since last period.
	Trend struct {
		TrendDirection  string  `json:"trendDirection"`
		TrendPercentage float64 `json:"trendPercentage"`
	}

	StudentStats struct {
		TotalStudents int `json:"totalStudents"`
		Trend
	}

	TeacherStats struct {
		TotalTeachers int `json:"totalTeachers"`
		Trend
	}

	UserStats struct {
		TotalUsers int `json:"totalUsers"`
		Trend
	}

	// ClassDistribution is one bar of the admin distribution charts.
	ClassDistribution struct {
		ClassName     string `json:"className"`
		TotalStudents int    `json:"totalStudents"`
		MaleCount     int    `json:"maleCount"`
		FemaleCount   int    `json:"femaleCount"`
		Ages          []int  `json:"ages"`
	}
)

// Admin dashboard stats.

func (svc *Service) StudentStats(ctx context.Context) (StudentStats, error) {
	var stats StudentStats
	err := svc.client.Get(ctx, "/api/admin/student-stats", &stats)
	return stats, err
}

func (svc *Service) TeacherStats(ctx context.Context) (TeacherStats, error) {
	var stats TeacherStats
	err := svc.client.Get(ctx, "/api/admin/teacher-stats", &stats)
	return stats, err
}

func (svc *Service) TotalUsers(ctx context.Context) (UserStats, error) {
	var stats UserStats
	err := svc.client.Get(ctx, "/api/admin/total-users", &stats)
	return stats, err
}

func (svc *Service) ClassDistribution(ctx context.Context) ([]ClassDistribution, error) {
	var dist []ClassDistribution
	err := svc.client.Get(ctx, "/api/admin/class-distribution", &dist)
	return dist, err
}

// StudentsAnalytics feeds the teacher's charts: the full mark listing for the
// classes the teacher handles.
func (svc *Service) StudentsAnalytics(ctx context.Context) ([]Mark, error) {
	var marks []Mark
	err := svc.client.Get(ctx, "/api/teacher/students-analytics", &marks)
	return marks, err
}
