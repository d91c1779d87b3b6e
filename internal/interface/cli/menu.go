package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tert62/COMP1551/internal/application/command"
	"github.com/tert62/COMP1551/internal/application/query"
	"github.com/tert62/COMP1551/internal/domain/person"
	"github.com/tert62/COMP1551/pkg/logger"
)

// Handlers bundles the application entry points the menu drives.
type Handlers struct {
	Enroll *command.EnrollPersonHandler
	Edit   *command.EditPersonHandler
	Remove *command.RemovePersonHandler
	Get    *query.GetPersonHandler
	List   *query.ListPeopleHandler
}

// Menu is the interactive front end. It never terminates the process on a
// validation failure; it reports and re-prompts.
type Menu struct {
	prompter *Prompter
	out      io.Writer
	handlers Handlers
	log      *logger.Logger
}

// NewMenu creates the interactive menu.
func NewMenu(in io.Reader, out io.Writer, handlers Handlers, log *logger.Logger) *Menu {
	return &Menu{
		prompter: NewPrompter(in, out),
		out:      out,
		handlers: handlers,
		log:      log.With(logger.Component("menu")),
	}
}

// Run drives the menu loop until the user quits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, "\n"+
			"1) add person\n"+
			"2) list all\n"+
			"3) list by role\n"+
			"4) find by id\n"+
			"5) edit person\n"+
			"6) delete person\n"+
			"0) quit\n")

		switch m.prompter.Line("choice") {
		case "1":
			m.addFlow()
		case "2":
			m.listFlow(nil)
		case "3":
			if role, ok := m.roleFlow(); ok {
				m.listFlow(&role)
			}
		case "4":
			m.findFlow()
		case "5":
			m.editFlow()
		case "6":
			m.deleteFlow()
		case "0", "q", "":
			fmt.Fprintln(m.out, "bye")
			return
		default:
			fmt.Fprintln(m.out, "unknown choice")
		}
	}
}

func (m *Menu) roleFlow() (person.Role, bool) {
	fmt.Fprint(m.out, "1) teacher  2) admin  3) student\n")
	switch m.prompter.Line("role") {
	case "1":
		return person.RoleTeacher, true
	case "2":
		return person.RoleAdmin, true
	case "3":
		return person.RoleStudent, true
	default:
		fmt.Fprintln(m.out, "unknown role")
		return "", false
	}
}

func (m *Menu) addFlow() {
	role, ok := m.roleFlow()
	if !ok {
		return
	}

	cmd := command.EnrollPersonCommand{
		Role:      role,
		Name:      m.prompter.Valid("name", checkName),
		Telephone: m.prompter.Valid("telephone", checkTelephone),
		Email:     m.prompter.Valid("email", checkEmail),
	}

	switch role {
	case person.RoleTeacher:
		cmd.Salary = m.prompter.Float("salary", person.ValidateSalary)
		cmd.Subjects = []string{
			m.prompter.Line("first subject (optional)"),
			m.prompter.Line("second subject (optional)"),
		}
	case person.RoleAdmin:
		cmd.Salary = m.prompter.Float("salary", person.ValidateSalary)
		cmd.FullTime = m.prompter.YesNo("full time")
		cmd.WorkingHours = m.prompter.Int("working hours per week", person.ValidateWorkingHours)
	case person.RoleStudent:
		cmd.Subjects = []string{
			m.prompter.Line("first subject (optional)"),
			m.prompter.Line("second subject (optional)"),
			m.prompter.Line("third subject (optional)"),
		}
	}

	p, err := m.handlers.Enroll.Handle(cmd)
	if err != nil {
		fmt.Fprintf(m.out, "could not add: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, p.Render())
}

func (m *Menu) listFlow(role *person.Role) {
	result := m.handlers.List.Handle(query.ListPeopleQuery{Role: role})
	if len(result.People) == 0 {
		fmt.Fprintln(m.out, "no records")
		return
	}
	for _, p := range result.People {
		fmt.Fprintln(m.out, p.Render())
	}
	fmt.Fprintf(m.out, "%d shown, %d total\n", len(result.People), result.Total)
}

func (m *Menu) findFlow() {
	id := m.prompter.Int("id", nil)
	p, ok := m.handlers.Get.Handle(query.GetPersonQuery{PersonID: id})
	if !ok {
		fmt.Fprintf(m.out, "no person with id %d\n", id)
		return
	}
	fmt.Fprintln(m.out, p.Render())
}

// editFlow re-prompts every applicable field. A blank answer keeps the
// current value; "-" clears an optional subject.
func (m *Menu) editFlow() {
	id := m.prompter.Int("id", nil)
	p, ok := m.handlers.Get.Handle(query.GetPersonQuery{PersonID: id})
	if !ok {
		fmt.Fprintf(m.out, "no person with id %d\n", id)
		return
	}
	fmt.Fprintln(m.out, p.Render())
	fmt.Fprintln(m.out, "blank keeps the current value")

	updates := command.FieldUpdates{}

	if name := m.prompter.Keep("name", p.Name(), checkName); name != p.Name() {
		updates.Name = &name
	}
	if tel := m.prompter.Keep("telephone", p.Telephone(), checkTelephone); tel != p.Telephone() {
		updates.Telephone = &tel
	}
	if email := m.prompter.Keep("email", p.Email(), checkEmail); email != p.Email() {
		updates.Email = &email
	}

	switch p.Role() {
	case person.RoleTeacher:
		if salary, changed := m.keepFloat("salary", p.Teacher().Salary()); changed {
			updates.Salary = &salary
		}
		current := p.Teacher().Subjects()
		subjects := []string{
			m.prompter.Keep("first subject", current[0], nil),
			m.prompter.Keep("second subject", current[1], nil),
		}
		if subjects[0] != current[0] || subjects[1] != current[1] {
			updates.Subjects = subjects
		}
	case person.RoleAdmin:
		if salary, changed := m.keepFloat("salary", p.Admin().Salary()); changed {
			updates.Salary = &salary
		}
		if fullTime, changed := m.keepBool("full time", p.Admin().FullTime()); changed {
			updates.FullTime = &fullTime
		}
		if hours, changed := m.keepInt("working hours per week", p.Admin().WorkingHours()); changed {
			updates.WorkingHours = &hours
		}
	case person.RoleStudent:
		current := p.Student().Subjects()
		subjects := []string{
			m.prompter.Keep("first subject", current[0], nil),
			m.prompter.Keep("second subject", current[1], nil),
			m.prompter.Keep("third subject", current[2], nil),
		}
		if subjects[0] != current[0] || subjects[1] != current[1] || subjects[2] != current[2] {
			updates.Subjects = subjects
		}
	}

	if err := m.handlers.Edit.Handle(command.EditPersonCommand{PersonID: id, Updates: updates}); err != nil {
		fmt.Fprintf(m.out, "could not edit: %v\n", err)
		return
	}
	if refreshed, ok := m.handlers.Get.Handle(query.GetPersonQuery{PersonID: id}); ok {
		fmt.Fprintln(m.out, refreshed.Render())
	}
}

func (m *Menu) deleteFlow() {
	id := m.prompter.Int("id", nil)
	removed, err := m.handlers.Remove.Handle(command.RemovePersonCommand{PersonID: id})
	if err != nil {
		fmt.Fprintf(m.out, "could not delete: %v\n", err)
		return
	}
	if !removed {
		fmt.Fprintf(m.out, "no person with id %d\n", id)
		return
	}
	fmt.Fprintf(m.out, "person %d deleted\n", id)
}

// keepBool edits a y/n field with blank-keeps-current semantics.
func (m *Menu) keepBool(label string, current bool) (bool, bool) {
	display := "n"
	if current {
		display = "y"
	}
	input, replaced := m.prompter.Replace(label+" (y/n)", display, func(s string) error {
		switch strings.ToLower(s) {
		case "y", "yes", "n", "no":
			return nil
		}
		return fmt.Errorf("answer y or n")
	})
	if !replaced {
		return current, false
	}
	value := strings.ToLower(input) == "y" || strings.ToLower(input) == "yes"
	return value, value != current
}

// keepFloat edits a numeric field with blank-keeps-current semantics. A blank
// answer returns the current value itself, never a reparse of its display
// string, so a no-op edit cannot lose precision.
func (m *Menu) keepFloat(label string, current float64) (float64, bool) {
	input, replaced := m.prompter.Replace(label, strconv.FormatFloat(current, 'f', -1, 64), func(s string) error {
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		return person.ValidateSalary(value)
	})
	if !replaced {
		return current, false
	}
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return current, false
	}
	return value, value != current
}

// keepInt edits an integer field with blank-keeps-current semantics.
func (m *Menu) keepInt(label string, current int) (int, bool) {
	input, replaced := m.prompter.Replace(label, strconv.Itoa(current), func(s string) error {
		value, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		return person.ValidateWorkingHours(value)
	})
	if !replaced {
		return current, false
	}
	value, err := strconv.Atoi(input)
	if err != nil {
		return current, false
	}
	return value, value != current
}

// Validation wrappers: the domain owns the rules, the menu only relays them.
func checkName(s string) error {
	_, err := person.ValidateName(s)
	return err
}

func checkTelephone(s string) error {
	_, err := person.ValidateTelephone(s)
	return err
}

func checkEmail(s string) error {
	_, err := person.ValidateEmail(s)
	return err
}
