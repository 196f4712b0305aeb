package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/listing"
	"auction-storefront/internal/models"
	"auction-storefront/internal/storefront"
	"auction-storefront/utils"

	"github.com/dustin/go-humanize"
)

var errAdminRequired = errors.New("this command requires an administrator session")

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// filterFlags binds the list filters onto fs
type filterFlags struct {
	typeArg string
	status  string
	sort    string
	query   string
	min     *float64
	max     *float64
}

func (f *filterFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.typeArg, "type", "", "product type id or name")
	fs.StringVar(&f.status, "status", "all", "all, open or closed")
	fs.StringVar(&f.sort, "sort", "none", "none, asc or desc")
	fs.StringVar(&f.query, "q", "", "fuzzy search over model, serial, description and type")
	fs.Func("min", "minimum starting price", priceFlag(&f.min))
	fs.Func("max", "maximum starting price", priceFlag(&f.max))
}

func priceFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", s)
		}
		*dst = &v
		return nil
	}
}

// params resolves the flags against the loaded dataset; a type name matches case-insensitively
func (f *filterFlags) params(l *storefront.Listing) (listing.Params, error) {
	status, err := listing.ParseStatus(f.status)
	if err != nil {
		return listing.Params{}, err
	}
	order, err := listing.ParseSort(f.sort)
	if err != nil {
		return listing.Params{}, err
	}

	p := listing.Params{
		TypeID:   listing.TypeAll,
		Status:   status,
		MinPrice: f.min,
		MaxPrice: f.max,
		Sort:     order,
		Query:    f.query,
	}
	if f.typeArg == "" {
		return p, nil
	}
	if id, err := strconv.ParseInt(f.typeArg, 10, 64); err == nil {
		p.TypeID = id
		return p, nil
	}
	for _, t := range l.Types() {
		if strings.EqualFold(t.Name, f.typeArg) {
			p.TypeID = t.ID
			return p, nil
		}
	}
	return listing.Params{}, fmt.Errorf("unknown product type %q", f.typeArg)
}

func (a *app) loadListing(ctx context.Context, f *filterFlags) (*storefront.Listing, error) {
	l := storefront.NewListing(a.client, storefront.WithCloseConcurrency(a.cfg.CloseConcurrency))
	if err := l.Refresh(ctx); err != nil {
		return nil, err
	}
	p, err := f.params(l)
	if err != nil {
		return nil, err
	}
	l.SetParams(p)
	return l, nil
}

func statusLabel(a models.Auction) string {
	if a.Closed {
		return "closed"
	}
	return "open"
}

func (a *app) list(ctx context.Context, args []string) error {
	var filters filterFlags
	fs := newFlagSet("list")
	filters.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	l, err := a.loadListing(ctx, &filters)
	if err != nil {
		return err
	}
	view := l.View()

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tMODEL\tSERIAL\tSTARTING PRICE\tSTATUS")
	for _, auction := range view {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			auction.ID, auction.TypeName(), auction.Model, auction.Serial,
			utils.FormatPrice(auction.StartingPrice), statusLabel(auction))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%s of %d", utils.Plural(len(view), "auction"), len(l.Dataset()))
	if r, ok := l.EffectivePrices(); ok {
		summary += fmt.Sprintf(", price range %s to %s", utils.FormatPrice(r.Min), utils.FormatPrice(r.Max))
	}
	fmt.Fprintln(a.out, summary)
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid auction id %q", arg)
	}
	return id, nil
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show ID")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	d := storefront.NewDetail(a.client)
	if err := d.Load(ctx, id); err != nil {
		return err
	}
	auction, _ := d.Auction()

	fmt.Fprintf(a.out, "#%d %s %s\n", auction.ID, auction.TypeName(), auction.Model)
	fmt.Fprintf(a.out, "serial:         %s\n", auction.Serial)
	fmt.Fprintf(a.out, "description:    %s\n", auction.Description)
	fmt.Fprintf(a.out, "starting price: %s\n", utils.FormatPrice(auction.StartingPrice))
	fmt.Fprintf(a.out, "status:         %s\n", statusLabel(auction))
	if auction.UpdatedAt != nil {
		fmt.Fprintf(a.out, "updated:        %s\n", humanize.Time(*auction.UpdatedAt))
	}

	images := d.Images()
	if images.Len() == 0 {
		fmt.Fprintln(a.out, "images:         none")
		return nil
	}
	for i := 0; i < images.Len(); i++ {
		url, _ := images.Current()
		fmt.Fprintf(a.out, "image %d/%d:      %s\n", images.Index()+1, images.Len(), url)
		images.Next()
	}
	return nil
}

func (a *app) bid(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: bid ID AMOUNT")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("log in to bid: %w", auctionerrors.ErrUnauthorized)
	}

	d := storefront.NewDetail(a.client)
	if err := d.Load(ctx, id); err != nil {
		return err
	}
	bid, err := d.PlaceBid(ctx, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "bid #%d of %s placed on auction #%d\n", bid.ID, utils.FormatPrice(bid.Price), bid.ProductID)
	if auction, ok := d.Auction(); ok && auction.Closed {
		fmt.Fprintln(a.out, "the auction has since closed")
	}
	return nil
}

func (a *app) requireAdmin() error {
	if !a.session.IsAdmin() {
		return errAdminRequired
	}
	return nil
}

func (a *app) close(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: close ID")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	auction, err := a.client.CloseAuction(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "auction #%d is %s\n", auction.ID, statusLabel(auction))
	return nil
}

func (a *app) closeAll(ctx context.Context, args []string) error {
	var filters filterFlags
	fs := newFlagSet("close-all")
	filters.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}

	l, err := a.loadListing(ctx, &filters)
	if err != nil {
		return err
	}
	if l.Selection().SelectAll(l.View()) == 0 {
		fmt.Fprintln(a.out, "no open auctions match the filters")
		return nil
	}

	result, err := l.CloseSelected(ctx)
	fmt.Fprintf(a.out, "closed %d of %s\n", result.Succeeded, utils.Plural(result.Requested, "auction"))
	for _, id := range result.FailedIDs {
		fmt.Fprintf(a.out, "  #%d: %s\n", id, result.Errors[id])
	}
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%s could not be closed", utils.Plural(result.Failed, "auction"))
	}
	return nil
}

func readUpload(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return filepath.Base(path), data, nil
}

func (a *app) printErrors(errs []string) {
	for _, e := range errs {
		fmt.Fprintf(a.out, "  %s\n", e)
	}
}

func (a *app) importAuctions(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: import FILE")
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}
	name, data, err := readUpload(args[0])
	if err != nil {
		return err
	}

	result, err := a.client.ImportCSV(ctx, name, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "processed %d: %d created, %d updated, %d failed\n",
		result.Processed, result.Created, result.Updated, result.Failed)
	a.printErrors(result.Errors)
	return nil
}

func (a *app) importUsers(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: import-users FILE")
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}
	name, data, err := readUpload(args[0])
	if err != nil {
		return err
	}

	result, err := a.client.ImportUsersCSV(ctx, name, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "processed %d: %d created, %d skipped, %d failed\n",
		result.Processed, result.Created, result.Skipped, result.Failed)
	a.printErrors(result.Errors)
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := newFlagSet("export")
	id := fs.Int64("id", 0, "export a single auction")
	output := fs.String("o", "", "write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var data []byte
	var err error
	if *id > 0 {
		data, err = a.client.ExportAuctionCSV(ctx, *id)
	} else {
		data, err = a.client.ExportCSV(ctx)
	}
	if err != nil {
		return err
	}

	if *output == "" {
		_, err = a.out.Write(data)
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}
	fmt.Fprintf(a.out, "wrote %s to %s\n", humanize.Bytes(uint64(len(data))), *output)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("usage: login -email EMAIL -password PASSWORD")
	}

	resp, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s\n", *email)
	if a.session.IsAdmin() {
		fmt.Fprintln(a.out, "administrator session")
	}
	if resp.NeedsPasswordReset {
		fmt.Fprintln(a.out, "this account still uses its one-time password")
	}
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *app) whoami() error {
	claims, err := a.session.Claims()
	if err != nil {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "email: %s\n", claims.Identity())
	fmt.Fprintf(a.out, "roles: %s\n", strings.Join(claims.Role, ", "))
	fmt.Fprintf(a.out, "admin: %t\n", a.session.IsAdmin())
	if claims.ExpiresAt != nil {
		state := "expires"
		if claims.ExpiresAt.Before(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "%s %s\n", state, humanize.Time(claims.ExpiresAt.Time))
	}
	return nil
}
