package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobsearch/internal/controller"
	"github.com/maxaizer/jobsearch/internal/domain/events"
	"github.com/maxaizer/jobsearch/internal/logger"
	log "github.com/sirupsen/logrus"
)

const (
	helpCommandName        = "help"
	companiesCommandName   = "companies"
	statusesCommandName    = "statuses"
	rolesCommandName       = "roles"
	formCommandName        = "form"
	addCompanyCommandName  = "add-company"
	companyCommandName     = "company"
	statusCommandName      = "status"
	roleCommandName        = "role"
	notesCommandName       = "notes"
	addRoleCommandName     = "add-role"
	selectCommandName      = "select"
	deselectCommandName    = "deselect"
	updateRoleCommandName  = "update-role"
	statsCommandName       = "stats"
	quitCommandName        = "quit"
	internalErrorMessage   = "Internal error!"
	unknownCommandMessage  = "Unknown command. Type \"help\" for the list of commands."
	readOnlyRoleMessage    = "Role name can't be changed while a role is selected."
	expectedRoleIDMessage  = "Expected a numeric role ID."
	unknownCompanyTemplate = "Unknown company %q. Add it with \"add-company\" first."
	unknownStatusTemplate  = "Unknown status %q. Type \"statuses\" to see them."
	roleNotListedTemplate  = "Role %d is not listed."
)

var commandsHelp = [][2]string{
	{helpCommandName, "show this help"},
	{companiesCommandName, "show companies"},
	{statusesCommandName, "show statuses"},
	{rolesCommandName, "show roles"},
	{formCommandName, "show the form"},
	{addCompanyCommandName + " <name>", "add a company and select it"},
	{companyCommandName + " <name>", "select a company, empty to clear"},
	{statusCommandName + " <name>", "select a status, empty to clear"},
	{roleCommandName + " <name>", "enter the role name"},
	{notesCommandName + " <text>", "enter notes"},
	{addRoleCommandName, "add a role from the form"},
	{selectCommandName + " <roleID>", "select a role for editing"},
	{deselectCommandName, "clear the role selection"},
	{updateRoleCommandName, "store status and notes of the selected role"},
	{statsCommandName, "show action and error counters"},
	{quitCommandName, "exit"},
}

// Shell is a line oriented front end for the form controller.
type Shell struct {
	in         io.Reader
	out        io.Writer
	controller *controller.Controller
}

func NewShell(in io.Reader, out io.Writer, controller *controller.Controller, bus EventBus.Bus) (*Shell, error) {

	if controller == nil {
		return nil, errors.New("controller is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	s := &Shell{in: in, out: out, controller: controller}

	if err := bus.Subscribe(events.CompaniesReloadedTopic, s.onCompaniesReloaded); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.RolesReloadedTopic, s.onRolesReloaded); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.FormChangedTopic, s.onFormChanged); err != nil {
		return nil, err
	}
	return s, nil
}

// Run loads the lists and handles commands until quit, end of input or ctx cancellation.
func (s *Shell) Run(ctx context.Context) error {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.controller.Load(ctx); err != nil {
		return err
	}
	s.println("Type \"help\" for the list of commands.")

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if quit := s.handleCommand(ctx, line); quit {
				return nil
			}
		}
	}
}

func (s *Shell) handleCommand(ctx context.Context, line string) bool {

	command, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	args = strings.TrimSpace(args)

	var err error

	switch command {
	case "":
	case helpCommandName:
		s.printHelp()
	case companiesCommandName:
		s.controller.SetActiveTab(controller.CompaniesTab)
		s.printCompanies()
	case statusesCommandName:
		s.printStatuses()
	case rolesCommandName:
		s.controller.SetActiveTab(controller.RolesTab)
		s.printRoles()
	case formCommandName:
		s.printForm()
	case addCompanyCommandName:
		s.controller.SetCompanyName(args)
		err = s.controller.AddCompany(ctx)
	case companyCommandName:
		if !s.controller.SetCompany(args) {
			s.printf(unknownCompanyTemplate, args)
		}
	case statusCommandName:
		if !s.controller.SetStatus(args) {
			s.printf(unknownStatusTemplate, args)
		}
	case roleCommandName:
		if !s.controller.SetRoleName(args) {
			s.println(readOnlyRoleMessage)
		}
	case notesCommandName:
		s.controller.SetNotes(args)
	case addRoleCommandName:
		err = s.controller.AddRole(ctx)
	case selectCommandName:
		roleID, parseErr := strconv.ParseInt(args, 10, 64)
		if parseErr != nil {
			s.println(expectedRoleIDMessage)
			break
		}
		if !s.controller.SelectRole(roleID) {
			s.printf(roleNotListedTemplate, roleID)
		}
	case deselectCommandName:
		s.controller.ClearSelection()
	case updateRoleCommandName:
		err = s.controller.UpdateRole(ctx)
	case statsCommandName:
		err = s.printStats()
	case quitCommandName, "exit":
		return true
	default:
		s.println(unknownCommandMessage)
	}

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("%s failed: %v", command, err)
		s.println(internalErrorMessage)
	}
	return false
}

func (s *Shell) onCompaniesReloaded(event events.CompaniesReloaded) {
	s.printCompanies()
	if event.SelectedName != "" {
		s.printf("Selected company: %s", event.SelectedName)
	}
}

func (s *Shell) onRolesReloaded(_ events.RolesReloaded) {
	s.printRoles()
}

func (s *Shell) onFormChanged(event events.FormChanged) {
	if event.Action == controller.ActionSelectRole || event.Action == controller.ActionClear {
		s.printForm()
	}
}

func (s *Shell) println(text string) {
	s.write(text + "\n")
}

func (s *Shell) printf(format string, args ...any) {
	s.write(fmt.Sprintf(format, args...) + "\n")
}

func (s *Shell) write(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeUI).Errorf("failed to write output: %v", err)
	}
}
