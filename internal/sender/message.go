package sender

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hal9000y/sponsor-emails/internal/gservice"
)

var errNoRecipients = errors.New("no recipient address found")

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_")

// SenderAddress derives the From address of a sender: the first letter of the
// name followed by everything after the first space, hyphens and spaces
// removed, lower-cased, at domain. "Ann Lee" becomes "alee@domain". A name
// without a space is used whole.
func SenderAddress(name, domain string) string {
	strip := strings.NewReplacer("-", "", " ", "")

	local := strip.Replace(name)
	if _, rest, ok := strings.Cut(name, " "); ok {
		first, _ := utf8.DecodeRuneInString(name)
		local = string(first) + strip.Replace(rest)
	}

	return strings.ToLower(local) + "@" + domain
}

// Recipients parses a contact email cell holding one or more addresses
// separated by commas or semicolons. Every address gets contactName as its
// display name.
func Recipients(contactName, cell string) ([]string, error) {
	cell = strings.ReplaceAll(cell, " ", "")

	segments := strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' })

	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		addr, err := mail.ParseAddress(seg)
		if err != nil {
			return nil, fmt.Errorf("invalid email address found in %q: %w", cell, err)
		}

		out = append(out, (&mail.Address{Name: contactName, Address: strings.ToLower(addr.Address)}).String())
	}

	if len(out) == 0 {
		return nil, errNoRecipients
	}

	return out, nil
}

type outgoing struct {
	senderName  string
	contactName string
	contactCell string
	text        string
	html        string
}

// compose builds the message for one row.
func (o *Orchestrator) compose(domain string, out outgoing) (gservice.Message, error) {
	to, err := Recipients(out.contactName, out.contactCell)
	if err != nil {
		return gservice.Message{}, err
	}

	from := mail.Address{Name: out.senderName, Address: SenderAddress(out.senderName, domain)}

	return gservice.Message{
		From:    from.String(),
		To:      to,
		ReplyTo: o.cfg.Senders.ReplyTo,
		Subject: o.cfg.Template.Subject,
		Text:    out.text,
		HTML:    out.html,
	}, nil
}

// writeDryRun stores a preview of msg in dir instead of sending it.
func writeDryRun(dir, contactName string, msg gservice.Message) (string, error) {
	name := fmt.Sprintf("%s - %s", fileNameReplacer.Replace(contactName), uuid.NewString())
	path := filepath.Join(dir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "From: %s\n", msg.From)
	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	fmt.Fprintf(&b, "Reply To: %s\n", msg.ReplyTo)
	b.WriteString("\n")
	b.WriteString(msg.Text)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile failed: %w", err)
	}

	return path, nil
}

func (o *Orchestrator) deliver(ctx context.Context, mailer Mailer, msg gservice.Message, contactName string, opts Options) error {
	if opts.DryRun {
		path, err := writeDryRun(opts.OutDir, contactName, msg)
		if err != nil {
			return err
		}
		o.log.Debug().Str("path", path).Msg("dry run message written")
		return nil
	}

	if err := mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
