// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

// Statistics aggregates the whole collection.
type Statistics struct {
	TotalStudents int
	// AverageGrade is the mean of per-student averages, rounded to 2 decimals.
	AverageGrade       float64
	HonorsDistribution map[Grade]int
	// TotalSubjects sums each student's subject count; shared subject
	// names are counted once per student.
	TotalSubjects int
}

func (m *Manager) Statistics() Statistics {
	stats := Statistics{HonorsDistribution: map[Grade]int{}}
	if len(m.students) == 0 {
		return stats
	}

	sum := 0.0
	for _, s := range m.Students() {
		avg := s.Average()
		sum += avg
		stats.HonorsDistribution[GradeFor(avg)]++
		stats.TotalSubjects += s.SubjectCount()
	}

	stats.TotalStudents = len(m.students)
	stats.AverageGrade = round2(sum / float64(len(m.students)))
	return stats
}
