package specification

import "gorm.io/gorm"

// ByHiringManager scopes requisitions to their owner (role-scoped
// visibility for hiring managers).
type ByHiringManager struct {
	Name string
}

func (s ByHiringManager) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("hiring_manager = ?", s.Name)
}

// ByStatus filters by the entity's status column.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByDepartment filters requisitions by department.
type ByDepartment struct {
	Department string
}

func (s ByDepartment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("department = ?", s.Department)
}

// ByCandidateAndJob pins an offer to its (candidate, job) pair.
type ByCandidateAndJob struct {
	CandidateID int
	JobID       int
}

func (s ByCandidateAndJob) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("candidate_id = ? AND job_id = ?", s.CandidateID, s.JobID)
}

// ByJob filters offers or boards by job requisition id.
type ByJob struct {
	JobID int
}

func (s ByJob) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("job_id = ?", s.JobID)
}

// ByCandidate filters offers by candidate id.
type ByCandidate struct {
	CandidateID int
}

func (s ByCandidate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("candidate_id = ?", s.CandidateID)
}

// SkillsContain does a case-insensitive substring match over the free-text
// candidate skills column.
type SkillsContain struct {
	Term string
}

func (s SkillsContain) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("skills ILIKE ?", "%"+s.Term+"%")
}
