package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// Command names understood by [App.Run].
const (
	CmdInfo           = "info"
	CmdLockout        = "lockout"
	CmdInit           = "init"
	CmdGroups         = "groups"
	CmdList           = "list"
	CmdShow           = "show"
	CmdCopy           = "copy"
	CmdAdd            = "add"
	CmdChangePassword = "passwd"
	CmdNotices        = "notices"
)

// Command is one parsed command line request.
type Command struct {
	Name string

	Password    string
	TotpCode    string
	NewPassword string

	// Group is the group name; empty selects the default group.
	Group       string
	GroupSecret string

	CertificateID int64
	Field         string

	CertificateName string
	Fields          []models.CertificateField
}

// App runs commands against a vault server.
type App struct {
	vault  adapter.VaultClient
	out    io.Writer
	copy   func(string) error
	logger *logger.Logger
}

// Option customizes an [App].
type Option func(*App)

// WithOutput redirects command results to w.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(a *App) {
		a.copy = fn
	}
}

func NewApp(vault adapter.VaultClient, log *logger.Logger, opts ...Option) *App {
	a := &App{
		vault:  vault,
		out:    os.Stdout,
		copy:   clipboard.WriteAll,
		logger: log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Run(ctx context.Context, cmd Command) error {
	a.logger.Debug().Str("command", cmd.Name).Msg("running command")

	switch cmd.Name {
	case CmdInfo:
		return a.info(ctx)
	case CmdLockout:
		return a.lockout(ctx)
	case CmdInit:
		return a.initVault(ctx, cmd)
	case CmdGroups:
		return a.withSession(ctx, cmd, a.groups)
	case CmdList:
		return a.withSession(ctx, cmd, a.list)
	case CmdShow:
		return a.withSession(ctx, cmd, a.show)
	case CmdCopy:
		return a.withSession(ctx, cmd, a.copyField)
	case CmdAdd:
		return a.withSession(ctx, cmd, a.add)
	case CmdChangePassword:
		return a.changePassword(ctx, cmd)
	case CmdNotices:
		return a.withSession(ctx, cmd, a.notices)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
}

type sessionFunc func(ctx context.Context, cmd Command, login models.LoginResponse) error

// withSession logs in, runs fn and always logs out afterwards.
func (a *App) withSession(ctx context.Context, cmd Command, fn sessionFunc) error {
	if cmd.Password == "" {
		return ErrPasswordRequired
	}

	login, err := a.vault.Login(ctx, cmd.Password, cmd.TotpCode)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		if err := a.vault.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout failed")
		}
	}()

	if login.HasNotice {
		a.logger.Info().Msg("there are unread security notices, run notices to review them")
	}

	return fn(ctx, cmd, login)
}

func (a *App) info(ctx context.Context) error {
	info, err := a.vault.GlobalInfo(ctx)
	if err != nil {
		return fmt.Errorf("global info: %w", err)
	}
	fmt.Fprintf(a.out, "%s %s\ninitialized: %t\n", info.AppName, info.Version, info.Initialized)
	return nil
}

func (a *App) lockout(ctx context.Context) error {
	status, err := a.vault.LockoutStatus(ctx)
	if err != nil {
		return fmt.Errorf("lockout status: %w", err)
	}

	fmt.Fprintf(a.out, "locked: %t\nretries remaining: %d\n", status.IsLocked, status.RetriesRemaining)
	if len(status.Records) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tIP\tLOCATION")
	for _, rec := range status.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Date.Format(time.DateTime), rec.IP, rec.Location)
	}
	return tw.Flush()
}

func (a *App) initVault(ctx context.Context, cmd Command) error {
	if cmd.Password == "" {
		return ErrPasswordRequired
	}
	if err := a.vault.CreateAdmin(ctx, cmd.Password); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	fmt.Fprintln(a.out, "vault initialized")
	return nil
}

func (a *App) changePassword(ctx context.Context, cmd Command) error {
	if cmd.Password == "" || cmd.NewPassword == "" {
		return ErrPasswordRequired
	}

	return a.withSession(ctx, cmd, func(ctx context.Context, cmd Command, _ models.LoginResponse) error {
		if err := a.vault.ChangePassword(ctx, cmd.Password, cmd.NewPassword, cmd.TotpCode); err != nil {
			return fmt.Errorf("change password: %w", err)
		}
		fmt.Fprintln(a.out, "master password changed")
		return nil
	})
}

func (a *App) groups(_ context.Context, _ Command, login models.LoginResponse) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCK\tDEFAULT")
	for _, g := range login.Groups {
		def := ""
		if g.ID == login.DefaultGroupID {
			def = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", g.ID, g.Name, g.LockType, def)
	}
	return tw.Flush()
}

func (a *App) list(ctx context.Context, cmd Command, login models.LoginResponse) error {
	group, err := a.openGroup(ctx, cmd, login)
	if err != nil {
		return err
	}

	certs, err := a.vault.ListCertificates(ctx, group.ID)
	if err != nil {
		return fmt.Errorf("list certificates: %w", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUPDATED")
	for _, c := range certs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.UpdatedAt.Format(time.DateTime))
	}
	return tw.Flush()
}

func (a *App) show(ctx context.Context, cmd Command, login models.LoginResponse) error {
	cert, fields, err := a.openCertificate(ctx, cmd, login)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, cert.Name)
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f.Label, f.Value)
	}
	return nil
}

func (a *App) copyField(ctx context.Context, cmd Command, login models.LoginResponse) error {
	_, fields, err := a.openCertificate(ctx, cmd, login)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if strings.EqualFold(f.Label, cmd.Field) {
			if err = a.copy(f.Value); err != nil {
				return fmt.Errorf("write clipboard: %w", err)
			}
			fmt.Fprintf(a.out, "%s copied to clipboard\n", f.Label)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrFieldNotFound, cmd.Field)
}

func (a *App) add(ctx context.Context, cmd Command, login models.LoginResponse) error {
	group, err := a.openGroup(ctx, cmd, login)
	if err != nil {
		return err
	}

	cert, err := a.vault.CreateCertificate(ctx, group.ID, cmd.CertificateName, cmd.Fields)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	fmt.Fprintf(a.out, "created certificate %d in %s\n", cert.ID, group.Name)
	return nil
}

func (a *App) notices(ctx context.Context, _ Command, _ models.LoginResponse) error {
	notices, err := a.vault.Notices(ctx)
	if err != nil {
		return fmt.Errorf("notices: %w", err)
	}
	if len(notices) == 0 {
		fmt.Fprintln(a.out, "no security notices")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tLEVEL\tIP\tLOCATION\tNOTICE")
	for _, n := range notices {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			n.CreatedAt.Format(time.DateTime), n.Level, n.IP, n.Location, n.Content)
	}
	return tw.Flush()
}

func (a *App) openCertificate(ctx context.Context, cmd Command, login models.LoginResponse) (models.Certificate, []models.CertificateField, error) {
	if cmd.CertificateID <= 0 {
		return models.Certificate{}, nil, ErrInvalidID
	}
	if _, err := a.openGroup(ctx, cmd, login); err != nil {
		return models.Certificate{}, nil, err
	}

	cert, err := a.vault.GetCertificate(ctx, cmd.CertificateID)
	if err != nil {
		return models.Certificate{}, nil, fmt.Errorf("get certificate: %w", err)
	}
	fields, err := a.vault.OpenCertificate(cert)
	if err != nil {
		return models.Certificate{}, nil, fmt.Errorf("decrypt certificate: %w", err)
	}
	return cert, fields, nil
}

// openGroup resolves the requested group and unlocks it for the session
// when its lock requires it.
func (a *App) openGroup(ctx context.Context, cmd Command, login models.LoginResponse) (models.GroupView, error) {
	group, ok := findGroup(login, cmd.Group)
	if !ok {
		return models.GroupView{}, fmt.Errorf("%w: %q", ErrGroupNotFound, cmd.Group)
	}
	if group.Unlocked || group.LockType == models.LockNone {
		return group, nil
	}
	if cmd.GroupSecret == "" {
		return models.GroupView{}, ErrGroupSecretRequired
	}

	if err := a.vault.UnlockGroup(ctx, group, cmd.GroupSecret); err != nil {
		return models.GroupView{}, fmt.Errorf("unlock group %s: %w", group.Name, err)
	}
	group.Unlocked = true
	return group, nil
}

func findGroup(login models.LoginResponse, name string) (models.GroupView, bool) {
	for _, g := range login.Groups {
		if name == "" && g.ID == login.DefaultGroupID {
			return g, true
		}
		if name != "" && g.Name == name {
			return g, true
		}
	}
	return models.GroupView{}, false
}

// ParseFields turns label=value pairs into certificate fields.
func ParseFields(pairs []string) ([]models.CertificateField, error) {
	fields := make([]models.CertificateField, 0, len(pairs))
	for _, p := range pairs {
		label, value, ok := strings.Cut(p, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, p)
		}
		fields = append(fields, models.CertificateField{Label: label, Value: value})
	}
	return fields, nil
}
