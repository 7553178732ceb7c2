package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/cofund/internal/client/models"
	"github.com/dmitrijs2005/cofund/internal/client/services"
	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/integrity"
)

// Invest asks to join the funding pool of a content item. The first
// investor founds the pool at once; later ones wait for approval.
func (a *App) Invest(ctx context.Context, contentID, amount string) error {
	n, err := ParseAmount(amount)
	if err != nil {
		return err
	}

	resp, err := a.fundingService.RequestJoin(ctx, a.userName, contentID, n)
	if err != nil {
		return err
	}

	if resp.Founded {
		a.ok("Founded the pool of %s with %d", contentID, n)
		if resp.Entry != nil {
			a.printf("Fingerprint: %s\n", resp.Entry.NewFingerprint)
		}
		return nil
	}
	if resp.Request != nil {
		a.ok("Request %s filed, %d held until the holders decide", resp.Request.ID, n)
	}
	return nil
}

func (a *App) Pending(ctx context.Context) error {
	list, err := a.fundingService.Eligible(ctx)
	if err != nil {
		return err
	}
	a.printRequests(list)
	return nil
}

func (a *App) MyRequests(ctx context.Context) error {
	list, err := a.fundingService.MyRequests(ctx)
	if err != nil {
		return err
	}
	a.printRequests(list)
	return nil
}

// Approve votes for a request. A divergent local fingerprint blocks the
// vote; the user has to inspect it with compare and adopt the server state
// with resync first.
func (a *App) Approve(ctx context.Context, requestID string) error {
	resp, err := a.fundingService.Approve(ctx, a.userName, requestID)
	if err != nil {
		if errors.Is(err, common.ErrDivergence) {
			a.warn("The content changed since you last saw it. Check it with 'compare' and 'resync' before voting.")
		}
		return err
	}

	if resp.Settled {
		a.ok("Approved, request %s settled", requestID)
		if resp.Entry != nil {
			a.printf("Fingerprint: %s\n", resp.Entry.NewFingerprint)
			a.printDividends(resp.Entry)
		}
		return nil
	}
	a.ok("Approved (%d of %d required)", resp.Approvals, resp.Required)
	return nil
}

func (a *App) Reject(ctx context.Context, requestID string) error {
	entry, err := a.fundingService.Reject(ctx, requestID)
	if err != nil {
		return err
	}
	a.ok("Request %s rejected, hold released (entry #%d)", requestID, entry.Seq)
	return nil
}

func (a *App) Resume(ctx context.Context, requestID string) error {
	entry, err := a.fundingService.Resume(ctx, a.userName, requestID)
	if err != nil {
		return err
	}
	a.ok("Request %s settled as %s (entry #%d)", requestID, entry.Outcome, entry.Seq)
	return nil
}

func (a *App) Stakes(ctx context.Context, contentID string) error {
	stakes, err := a.fundingService.Stakes(ctx, contentID)
	if err != nil {
		return err
	}
	a.printStakes(stakes)
	return nil
}

func (a *App) Portfolio(ctx context.Context) error {
	p, err := a.fundingService.Portfolio(ctx)
	if err != nil {
		return err
	}
	a.printf("Cash:      %d\n", p.Cash)
	a.printf("Invested:  %d\n", p.TotalInvested)
	a.printf("Dividends: %d\n\n", p.TotalDividend)
	a.printStakes(p.Stakes)
	if len(p.Pending) > 0 {
		a.printf("\n")
		a.printRequests(p.Pending)
	}
	return nil
}

// Chain prints the settlement history of a content item, oldest first.
func (a *App) Chain(ctx context.Context, contentID string) error {
	entries, err := a.fundingService.Chain(ctx, contentID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.printf("No settlements yet\n")
		return nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tOUTCOME\tREQUEST\tWHEN\tPREV\tNEW\tHOLDERS")
	for _, e := range entries {
		holders := make([]string, 0, len(e.Stakes))
		for _, s := range e.Stakes {
			holders = append(holders, fmt.Sprintf("%s:%d", s.HolderLabel, s.Amount))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", e.Seq, e.Outcome, e.RequestID,
			e.Timestamp.Local().Format(time.DateTime), abbrev(e.PrevFingerprint), abbrev(e.NewFingerprint),
			strings.Join(holders, ", "))
	}
	return w.Flush()
}

// Verify recomputes the chain locally.
func (a *App) Verify(ctx context.Context, contentID string) error {
	head, err := a.fundingService.Verify(ctx, contentID)
	if err != nil {
		if errors.Is(err, integrity.ErrBrokenLink) || errors.Is(err, integrity.ErrFingerprintMismatch) ||
			errors.Is(err, services.ErrChainHeadMismatch) {
			a.warn("Chain of %s does not verify", contentID)
		}
		return err
	}
	a.ok("Chain verified, head %s", head)
	return nil
}

// Resync adopts the verified server state as the one this user has seen.
func (a *App) Resync(ctx context.Context, contentID string) error {
	head, err := a.fundingService.Resync(ctx, a.userName, contentID)
	if err != nil {
		return err
	}
	a.ok("Now tracking %s", head)
	return nil
}

// Compare shows the cached fingerprints of this user next to the server's.
func (a *App) Compare(ctx context.Context, contentID string) error {
	cmp, err := a.fundingService.Compare(ctx, a.userName, contentID)
	if err != nil {
		return err
	}

	a.printf("Server:   %s\n", orNone(cmp.Authoritative))
	a.printf("Seen:     %s\n", orNone(cmp.Cached))
	a.printf("Expected: %s\n", orNone(cmp.Expected))

	switch cmp.Divergence {
	case integrity.Match.String():
		a.ok("State: %s", cmp.Divergence)
	case integrity.ServerAhead.String():
		a.warn("State: %s (nothing seen yet, run resync)", cmp.Divergence)
	default:
		a.fail(fmt.Errorf("state: %s", cmp.Divergence))
	}

	switch cmp.Confirmation {
	case integrity.Confirmed:
		a.ok("Your last approval was committed as expected")
	case integrity.Suspected:
		a.warn("The server state differs from what your last approval expected")
	case integrity.Awaiting:
		a.printf("Your last approval is not settled yet\n")
	}
	return nil
}

func (a *App) printStakes(stakes []models.Stake) {
	if len(stakes) == 0 {
		a.printf("No stakes\n")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STAKE\tCONTENT\tHOLDER\tAMOUNT\tDIVIDEND\tADMITTED")
	for _, s := range stakes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n", s.ID, s.ContentID, s.HolderLabel, s.Amount,
			s.AccruedDividend, s.AdmittedAt.Local().Format(time.DateTime))
	}
	_ = w.Flush()
}

func (a *App) printRequests(list []models.PendingRequest) {
	if len(list) == 0 {
		a.printf("No requests\n")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REQUEST\tCONTENT\tREQUESTER\tAMOUNT\tAPPROVALS\tSTATUS")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n", r.ID, r.ContentID, r.RequesterLabel, r.Amount,
			len(r.Approvals), r.Status)
	}
	_ = w.Flush()
}

func (a *App) printDividends(e *models.ChainEntry) {
	for _, d := range e.Dividends {
		a.printf("  dividend %d to stake %s\n", d.Amount, d.StakeID)
	}
	if e.DividendDust > 0 {
		a.printf("  undistributed remainder %d\n", e.DividendDust)
	}
}

func abbrev(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return orNone(fp)
}
