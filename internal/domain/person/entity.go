// Package person contains the validated roster entity model: the Person
// tagged union over the Teacher, Admin and Student variants. This is the core
// business logic of the roster and the single source of truth for field
// validation.
package person

import (
	"errors"
	"regexp"
	"strings"

	"github.com/tert62/COMP1551/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALIDATION RULES
// ══════════════════════════════════════════════════════════════════════════════

// Working hours bounds for the Admin variant.
const (
	MinWorkingHours = 0
	MaxWorkingHours = 84
)

// Validation patterns. These are the contract for the whole system: callers
// must not duplicate them.
var (
	telephoneRegex = regexp.MustCompile(`^0\d{9,10}$`)
	emailRegex     = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Entity-level errors that are not field validation failures.
var (
	// ErrIDAssigned is returned when assigning an id to a person that
	// already has one. Ids are immutable once set.
	ErrIDAssigned = errors.New("person: id already assigned")

	// ErrWrongRole is returned when a variant-specific accessor or setter
	// is used on a person of another role.
	ErrWrongRole = errors.New("person: field does not apply to this role")
)

// ValidateName trims the name and rejects blank input. The callers below and
// the interactive front end share these validators so acceptance logic never
// diverges.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shared.EmptyField("name")
	}
	return trimmed, nil
}

// ValidateTelephone checks the telephone pattern.
func ValidateTelephone(telephone string) (string, error) {
	if !telephoneRegex.MatchString(telephone) {
		return "", shared.InvalidFormat("telephone", "must start with 0 followed by 9 to 10 digits")
	}
	return telephone, nil
}

// ValidateEmail checks the email pattern.
func ValidateEmail(email string) (string, error) {
	if !emailRegex.MatchString(email) {
		return "", shared.InvalidFormat("email", "must look like name@domain.tld")
	}
	return email, nil
}

// ValidateSalary rejects negative salaries.
func ValidateSalary(salary float64) error {
	if salary < 0 {
		return shared.OutOfRange("salary", "must not be negative")
	}
	return nil
}

// ValidateWorkingHours checks the weekly hours bound.
func ValidateWorkingHours(hours int) error {
	if hours < MinWorkingHours || hours > MaxWorkingHours {
		return shared.OutOfRange("working_hours", "must be between 0 and 84")
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Person is a validated roster record. The shared identity and contact fields
// live on the struct itself; role-specific attributes live in exactly one of
// the variant payloads. Fields are unexported so that every mutation goes
// through a validating setter: on failure the previous value is retained.
type Person struct {
	id        int // assigned by the store, immutable once set
	name      string
	telephone string
	email     string
	role      Role

	teacher *TeacherDetails
	admin   *AdminDetails
	student *StudentDetails
}

// TeacherDetails holds the Teacher variant payload.
type TeacherDetails struct {
	salary   float64
	subject1 string
	subject2 string
}

// Salary returns the teacher's salary.
func (d *TeacherDetails) Salary() float64 { return d.salary }

// Subjects returns the taught subjects in order. Entries may be empty.
func (d *TeacherDetails) Subjects() [2]string { return [2]string{d.subject1, d.subject2} }

// AdminDetails holds the Admin variant payload.
type AdminDetails struct {
	salary       float64
	fullTime     bool
	workingHours int
}

// Salary returns the admin's salary.
func (d *AdminDetails) Salary() float64 { return d.salary }

// FullTime reports whether the admin works full time.
func (d *AdminDetails) FullTime() bool { return d.fullTime }

// WorkingHours returns the weekly working hours.
func (d *AdminDetails) WorkingHours() int { return d.workingHours }

// StudentDetails holds the Student variant payload.
type StudentDetails struct {
	subject1 string
	subject2 string
	subject3 string
}

// Subjects returns the studied subjects in order. Entries may be empty.
func (d *StudentDetails) Subjects() [3]string {
	return [3]string{d.subject1, d.subject2, d.subject3}
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORIES
// Construction is atomic: if any field fails validation no instance is
// produced.
// ══════════════════════════════════════════════════════════════════════════════

func newPerson(role Role, name, telephone, email string) (*Person, error) {
	validName, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	validTelephone, err := ValidateTelephone(telephone)
	if err != nil {
		return nil, err
	}
	validEmail, err := ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	return &Person{
		name:      validName,
		telephone: validTelephone,
		email:     validEmail,
		role:      role,
	}, nil
}

// NewTeacher creates a validated Teacher. Subjects are trimmed and may be
// empty.
func NewTeacher(name, telephone, email string, salary float64, subject1, subject2 string) (*Person, error) {
	p, err := newPerson(RoleTeacher, name, telephone, email)
	if err != nil {
		return nil, err
	}
	if err := ValidateSalary(salary); err != nil {
		return nil, err
	}

	p.teacher = &TeacherDetails{
		salary:   salary,
		subject1: strings.TrimSpace(subject1),
		subject2: strings.TrimSpace(subject2),
	}
	return p, nil
}

// NewAdmin creates a validated Admin.
func NewAdmin(name, telephone, email string, salary float64, fullTime bool, workingHours int) (*Person, error) {
	p, err := newPerson(RoleAdmin, name, telephone, email)
	if err != nil {
		return nil, err
	}
	if err := ValidateSalary(salary); err != nil {
		return nil, err
	}
	if err := ValidateWorkingHours(workingHours); err != nil {
		return nil, err
	}

	p.admin = &AdminDetails{
		salary:       salary,
		fullTime:     fullTime,
		workingHours: workingHours,
	}
	return p, nil
}

// NewStudent creates a validated Student. Subjects are trimmed and may be
// empty.
func NewStudent(name, telephone, email string, subject1, subject2, subject3 string) (*Person, error) {
	p, err := newPerson(RoleStudent, name, telephone, email)
	if err != nil {
		return nil, err
	}

	p.student = &StudentDetails{
		subject1: strings.TrimSpace(subject1),
		subject2: strings.TrimSpace(subject2),
		subject3: strings.TrimSpace(subject3),
	}
	return p, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// ID returns the store-assigned identifier, or 0 if not yet added to a store.
func (p *Person) ID() int { return p.id }

// Name returns the trimmed display name.
func (p *Person) Name() string { return p.name }

// Telephone returns the telephone number.
func (p *Person) Telephone() string { return p.telephone }

// Email returns the email address.
func (p *Person) Email() string { return p.email }

// Role returns the fixed variant discriminant.
func (p *Person) Role() Role { return p.role }

// Teacher returns the Teacher payload, or nil for other roles.
func (p *Person) Teacher() *TeacherDetails { return p.teacher }

// Admin returns the Admin payload, or nil for other roles.
func (p *Person) Admin() *AdminDetails { return p.admin }

// Student returns the Student payload, or nil for other roles.
func (p *Person) Student() *StudentDetails { return p.student }

// AssignID sets the store-assigned id. It may be called exactly once; the id
// is immutable afterwards.
func (p *Person) AssignID(id int) error {
	if p.id != 0 {
		return ErrIDAssigned
	}
	p.id = id
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// SETTERS
// Each setter re-validates with the same rules as construction. The contract
// is all-or-nothing: on failure nothing is mutated and the error is surfaced.
// ══════════════════════════════════════════════════════════════════════════════

// SetName updates the name after trimming and validation.
func (p *Person) SetName(name string) error {
	valid, err := ValidateName(name)
	if err != nil {
		return err
	}
	p.name = valid
	return nil
}

// SetTelephone updates the telephone number after validation.
func (p *Person) SetTelephone(telephone string) error {
	valid, err := ValidateTelephone(telephone)
	if err != nil {
		return err
	}
	p.telephone = valid
	return nil
}

// SetEmail updates the email address after validation.
func (p *Person) SetEmail(email string) error {
	valid, err := ValidateEmail(email)
	if err != nil {
		return err
	}
	p.email = valid
	return nil
}

// SetSalary updates the salary of a Teacher or Admin.
func (p *Person) SetSalary(salary float64) error {
	if !p.role.HasSalary() {
		return ErrWrongRole
	}
	if err := ValidateSalary(salary); err != nil {
		return err
	}
	switch p.role {
	case RoleTeacher:
		p.teacher.salary = salary
	case RoleAdmin:
		p.admin.salary = salary
	}
	return nil
}

// SetFullTime updates the full-time flag of an Admin.
func (p *Person) SetFullTime(fullTime bool) error {
	if p.role != RoleAdmin {
		return ErrWrongRole
	}
	p.admin.fullTime = fullTime
	return nil
}

// SetWorkingHours updates the weekly working hours of an Admin.
func (p *Person) SetWorkingHours(hours int) error {
	if p.role != RoleAdmin {
		return ErrWrongRole
	}
	if err := ValidateWorkingHours(hours); err != nil {
		return err
	}
	p.admin.workingHours = hours
	return nil
}

// SetSubjects updates the subject list of a Teacher (exactly two subjects) or
// Student (exactly three). Subjects are trimmed and may be empty.
func (p *Person) SetSubjects(subjects ...string) error {
	switch p.role {
	case RoleTeacher:
		if len(subjects) != 2 {
			return ErrWrongRole
		}
		p.teacher.subject1 = strings.TrimSpace(subjects[0])
		p.teacher.subject2 = strings.TrimSpace(subjects[1])
		return nil
	case RoleStudent:
		if len(subjects) != 3 {
			return ErrWrongRole
		}
		p.student.subject1 = strings.TrimSpace(subjects[0])
		p.student.subject2 = strings.TrimSpace(subjects[1])
		p.student.subject3 = strings.TrimSpace(subjects[2])
		return nil
	default:
		return ErrWrongRole
	}
}
