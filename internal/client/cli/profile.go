package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
)

// EditProfile walks through the profile form, pre-filled with the current
// values, and submits it.
func (a *App) EditProfile(ctx context.Context) error {
	if a.view.Section() != view.SectionProfile {
		a.view.SwitchSection(view.SectionProfile)
	}
	f := a.view.ProfileForm()
	fmt.Fprintln(a.out, "Edit profile (Enter keeps a value, '-' clears it)")

	fields := []struct {
		label string
		value *string
	}{
		{"Full name", &f.FullName},
		{"Nickname", &f.Nickname},
		{"Professional title", &f.ProfessionalTitle},
		{"Email", &f.Email},
		{"Phone", &f.PhoneNo},
		{"WhatsApp", &f.WhatsApp},
	}
	for _, fld := range fields {
		v, err := getWithDefault(a.reader, fld.label, *fld.value, a.out)
		if err != nil {
			return err
		}
		*fld.value = v
	}

	bio, err := getMultiline(a.reader, "Bio", f.Bio, a.out)
	if err != nil {
		return err
	}
	f.Bio = bio

	for i := range f.Links {
		link, err := a.promptLink(i+1, f.Links[i])
		if err != nil {
			return err
		}
		f.Links[i] = link
	}
	for {
		more, err := confirm(a.reader, "Add another social link?", a.out)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		link, err := a.promptLink(len(f.Links)+1, models.SocialLink{})
		if err != nil {
			return err
		}
		f.Links = append(f.Links, link)
	}

	a.view.SetProfileForm(f)
	return a.submitProfile(ctx, f)
}

func (a *App) promptLink(n int, cur models.SocialLink) (models.SocialLink, error) {
	platform, err := getWithDefault(a.reader, fmt.Sprintf("Social link %d platform", n), cur.Platform, a.out)
	if err != nil {
		return cur, err
	}
	url, err := getWithDefault(a.reader, fmt.Sprintf("Social link %d URL", n), cur.URL, a.out)
	if err != nil {
		return cur, err
	}
	return models.SocialLink{Platform: platform, URL: url}, nil
}

func (a *App) submitProfile(ctx context.Context, f view.ProfileForm) error {
	return a.withLoading(ctx, func(ctx context.Context) error {
		mode, err := a.portfolio.SaveProfile(ctx, f.Profile())
		if err != nil {
			return a.fail(ctx, "Failed to save profile", err)
		}
		a.log.Info(ctx, "profile saved", "mode", mode.String())
		a.ok("Profile saved successfully")
		return nil
	})
}

// AddLink appends a social link row to the profile form. It is sent with
// the next profile submit.
func (a *App) AddLink(ctx context.Context) error {
	link, err := a.promptLink(len(a.view.ProfileForm().Links)+1, models.SocialLink{})
	if err != nil {
		return err
	}
	a.view.AddSocialLinkFields(link)
	a.view.SwitchSection(view.SectionProfile)
	fmt.Fprintln(a.out, "Run 'editprofile' to review and save the profile.")
	return nil
}
