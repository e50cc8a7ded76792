package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/rhyrak/exam-registry/internal/registry"
	"github.com/rhyrak/exam-registry/pkg/model"
)

// MenuItem is a numbered entry of the operator menu.
type MenuItem int

const (
	MenuInsert MenuItem = iota + 1
	MenuDelete
	MenuSearch
	MenuList
	MenuExit
)

func (m MenuItem) String() string {
	switch m {
	case MenuInsert:
		return "insert"
	case MenuDelete:
		return "delete"
	case MenuSearch:
		return "search"
	case MenuList:
		return "list"
	case MenuExit:
		return "exit"
	}
	return fmt.Sprintf("MenuItem(%d)", int(m))
}

// Store is the reservation storage the controller drives.
// *registry.Store implements it.
type Store interface {
	Insert(req model.Request) model.ReservationID
	DeleteByName(name string) (int, error)
	FindByName(name string) (model.Reservation, error)
	All() iter.Seq[model.Reservation]
	Len() int
}

// Controller runs the operator menu against a store it does not own the
// lifetime of.
type Controller struct {
	store  Store
	in     *bufio.Reader
	out    io.Writer
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the clock used to pick the displayed year.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController builds a controller reading operator input from in and
// writing screens to out.
func NewController(store Store, in io.Reader, out io.Writer, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run loops over the menu until Exit is chosen or input runs out.
func (c *Controller) Run() error {
	err := c.loop()
	if errors.Is(err, errInputClosed) {
		c.logger.Debug("input closed, leaving menu")
		fmt.Fprintln(c.out)
		err = nil
	}
	if err == nil {
		fmt.Fprintln(c.out, "Exiting the program.")
	}
	return err
}

func (c *Controller) loop() error {
	for {
		fmt.Fprintln(c.out, separator)
		fmt.Fprint(c.out, menu)

		choice, err := c.promptInt("Select a menu item: ", "menu", func(v int) error {
			if v < int(MenuInsert) || v > int(MenuExit) {
				return &model.ValidationError{Field: "menu", Reason: "must be between 1 and 5"}
			}
			return nil
		})
		if err != nil {
			return err
		}

		item := MenuItem(choice)
		c.logger.Debug("menu item selected", zap.Stringer("item", item))

		switch item {
		case MenuInsert:
			err = c.insert()
		case MenuDelete:
			err = c.delete()
		case MenuSearch:
			err = c.search()
		case MenuList:
			c.list()
		case MenuExit:
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := c.readLine("Press Enter to continue..."); err != nil {
			return err
		}
	}
}

func (c *Controller) insert() error {
	fmt.Fprintln(c.out, separator)
	fmt.Fprintln(c.out, "========== New exam reservation ==========")

	var (
		req model.Request
		err error
	)
	if req.Name, err = c.promptText("Applicant name: ", model.FieldName); err != nil {
		return err
	}
	if req.Subject, err = c.promptText("Exam subject: ", model.FieldSubject); err != nil {
		return err
	}
	if req.Location, err = c.promptText("Exam location: ", model.FieldLocation); err != nil {
		return err
	}
	if req.Month, err = c.promptField("Exam month", model.FieldMonth); err != nil {
		return err
	}
	if req.Day, err = c.promptField("Exam day", model.FieldDay); err != nil {
		return err
	}
	if req.Hour, err = c.promptField("Exam hour", model.FieldHour); err != nil {
		return err
	}
	if req.Minute, err = c.promptField("Exam minute", model.FieldMinute); err != nil {
		return err
	}

	id := c.store.Insert(req)
	fmt.Fprintf(c.out, "Reservation complete. Seat #%d.\n", id)
	return nil
}

func (c *Controller) delete() error {
	if c.store.Len() == 0 {
		fmt.Fprintln(c.out, "There are no reservations to delete.")
		return nil
	}

	fmt.Fprintln(c.out, separator)
	name, err := c.readLine("Applicant name to cancel: ")
	if err != nil {
		return err
	}

	n, err := c.store.DeleteByName(name)
	if errors.Is(err, registry.ErrNotFound) {
		fmt.Fprintln(c.out, "No matching applicant.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("cancel reservations: %w", err)
	}
	fmt.Fprintf(c.out, "Cancelled %d reservation(s).\n", n)
	return nil
}

func (c *Controller) search() error {
	if c.store.Len() == 0 {
		fmt.Fprintln(c.out, "There are no reservations to search.")
		return nil
	}

	fmt.Fprintln(c.out, separator)
	name, err := c.readLine("Applicant name to search: ")
	if err != nil {
		return err
	}

	r, err := c.store.FindByName(name)
	if errors.Is(err, registry.ErrNotFound) {
		fmt.Fprintln(c.out, "No matching applicant.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("search reservations: %w", err)
	}
	printReservation(c.out, r, c.now().Year())
	return nil
}

func (c *Controller) list() {
	if c.store.Len() == 0 {
		fmt.Fprintln(c.out, "No reservations registered.")
		return
	}

	fmt.Fprintln(c.out, separator)
	year := c.now().Year()
	for r := range c.store.All() {
		printReservation(c.out, r, year)
		fmt.Fprintln(c.out, separator)
	}
}
