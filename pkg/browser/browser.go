// Package browser is a terminal front-end for a navigation session.
// It only translates key presses into session calls and snapshots into rows.
package browser

import (
	"context"
	"path/filepath"

	"github.com/filetug/dirtug/pkg/listing"
	"github.com/filetug/dirtug/pkg/navigation"
	"github.com/filetug/dirtug/pkg/opener"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// Session is the part of navigation.Session the browser drives.
type Session interface {
	Snapshot() navigation.Snapshot
	GoUp(ctx context.Context) (navigation.Snapshot, error)
	ToggleHidden(ctx context.Context) (navigation.Snapshot, error)
	Refresh(ctx context.Context) (navigation.Snapshot, error)
	Activate(ctx context.Context, name string) (navigation.Activation, error)
}

var _ Session = (*navigation.Session)(nil)

type Option func(b *Browser)

func WithLogger(logger zerolog.Logger) Option {
	return func(b *Browser) {
		b.log = logger
	}
}

// WithTitle shows title on the frame, e.g. the store's root title.
func WithTitle(title string) Option {
	return func(b *Browser) {
		b.title = title
	}
}

// WithQuit sets what the q key does.
func WithQuit(quit func()) Option {
	return func(b *Browser) {
		b.quit = quit
	}
}

type Browser struct {
	*tview.Flex
	ctx      context.Context
	session  Session
	opener   opener.Opener
	log      zerolog.Logger
	quit     func()
	title    string
	order    sortOrder
	location *tview.TextView
	table    *tview.Table
	status   *tview.TextView
	rows     *listingRows
	lastErr  error
}

func New(ctx context.Context, session Session, o opener.Opener, options ...Option) *Browser {
	b := &Browser{
		ctx:      ctx,
		session:  session,
		opener:   o,
		log:      zerolog.Nop(),
		location: tview.NewTextView(),
		table:    tview.NewTable(),
		status:   tview.NewTextView(),
	}
	for _, option := range options {
		option(b)
	}

	b.location.SetDynamicColors(false)
	b.location.SetTextColor(tcell.ColorYellow)
	b.status.SetTextColor(tcell.ColorGray)

	b.table.SetSelectable(true, false)
	b.table.SetFixed(1, 0)
	b.table.SetInputCapture(b.inputCapture)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow)
	b.AddItem(b.location, 1, 0, false)
	b.AddItem(b.table, 0, 1, true)
	b.AddItem(b.status, 1, 0, false)
	if b.title != "" {
		b.SetBorder(true)
		b.SetTitle(" " + b.title + " ")
		b.SetTitleAlign(tview.AlignLeft)
	}

	b.show(session.Snapshot(), "")
	return b
}

// show replaces the table content and selects the named entry if present.
func (b *Browser) show(snapshot navigation.Snapshot, selectName string) {
	b.rows = newListingRows(snapshot.Listing, b.order)
	b.table.SetContent(b.rows)
	b.location.SetText(snapshot.Location)
	row := 1
	if selectName != "" {
		if r := b.rows.rowOf(selectName); r > 0 {
			row = r
		}
	}
	b.table.Select(row, 0)
	b.updateStatus(snapshot.Listing.ShowHidden())
}

func (b *Browser) updateStatus(showHidden bool) {
	text := "hidden: off"
	if showHidden {
		text = "hidden: on"
	}
	text += "  sort: " + b.order.String() + "  [Enter] open  [Backspace] up  [.] hidden  [s/S] sort  [r] reload  [q] quit"
	if b.lastErr != nil {
		text = b.lastErr.Error()
	}
	b.status.SetText(text)
	if b.lastErr != nil {
		b.status.SetTextColor(tcell.ColorOrangeRed)
	} else {
		b.status.SetTextColor(tcell.ColorGray)
	}
}

// SelectedEntry is the entry under the cursor.
func (b *Browser) SelectedEntry() (listing.Entry, bool) {
	row, _ := b.table.GetSelection()
	return b.rows.entryAt(row)
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEnter:
		b.activateSelected()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		b.goUp()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case '.':
			b.toggleHidden()
			return nil
		case 'r':
			b.refresh()
			return nil
		case 's':
			b.sortBy(b.order.next())
			return nil
		case 'S':
			b.sortBy(b.order.reversed())
			return nil
		case 'q':
			if b.quit != nil {
				b.quit()
				return nil
			}
		}
	}
	return event
}

func (b *Browser) activateSelected() {
	entry, ok := b.SelectedEntry()
	if !ok {
		return
	}
	activation, err := b.session.Activate(b.ctx, entry.Name())
	if err != nil {
		b.fail(err)
		return
	}
	b.lastErr = nil
	if activation.OpenPath == "" {
		b.show(activation.Snapshot, "")
		return
	}
	if b.opener == nil {
		return
	}
	if err = b.opener.Open(activation.OpenPath); err != nil {
		b.fail(err)
		return
	}
	b.updateStatus(activation.Listing.ShowHidden())
}

func (b *Browser) goUp() {
	left := filepath.Base(b.session.Snapshot().Location)
	snapshot, err := b.session.GoUp(b.ctx)
	if err != nil {
		b.fail(err)
		return
	}
	b.lastErr = nil
	b.show(snapshot, left)
}

func (b *Browser) toggleHidden() {
	b.reload(b.session.ToggleHidden)
}

func (b *Browser) refresh() {
	b.reload(b.session.Refresh)
}

// reload keeps the cursor on the same entry when it is still listed.
func (b *Browser) reload(transition func(ctx context.Context) (navigation.Snapshot, error)) {
	var selected string
	if entry, ok := b.SelectedEntry(); ok {
		selected = entry.Name()
	}
	snapshot, err := transition(b.ctx)
	if err != nil {
		b.fail(err)
		return
	}
	b.lastErr = nil
	b.show(snapshot, selected)
}

// sortBy reorders the current rows and keeps the cursor on the selected entry.
// The order is kept while navigating.
func (b *Browser) sortBy(order sortOrder) {
	var selected string
	if entry, ok := b.SelectedEntry(); ok {
		selected = entry.Name()
	}
	b.order = order
	b.show(b.session.Snapshot(), selected)
}

// fail keeps the current rows on screen and reports err in the status line.
func (b *Browser) fail(err error) {
	b.log.Warn().Err(err).Msg("transition failed")
	b.lastErr = err
	b.updateStatus(b.rows.listing.ShowHidden())
}
