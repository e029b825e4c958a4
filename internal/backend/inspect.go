package backend

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/supabase-bootstrap/internal/utils"
	"github.com/MKhiriev/supabase-bootstrap/models"
)

const hostedDomain = ".supabase.co"

// ProjectRefFromURL extracts the project reference from a hosted project URL
// ("https://<ref>.supabase.co"). Self-hosted and custom domains yield "".
func ProjectRefFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	ref, ok := strings.CutSuffix(strings.ToLower(u.Hostname()), hostedDomain)
	if !ok || ref == "" || strings.Contains(ref, ".") {
		return ""
	}
	return ref
}

// inspectKey decodes the public key's claims and logs the problems worth an
// operator's attention. Opaque keys return nil.
func (b *Bootstrap) inspectKey(rawURL, key string) *models.APIKeyClaims {
	claims, err := utils.ParseAPIKeyClaims(key)
	if err != nil {
		b.logger.Debug().Msg("public key is opaque, skipping claim inspection")
		return nil
	}

	if claims.IsExpired(b.now()) {
		b.logger.Warn().
			Time("expired_at", claims.ExpiresAt.Time).
			Msg("public key is expired")
	}

	if ref := ProjectRefFromURL(rawURL); ref != "" && claims.Ref != "" && ref != claims.Ref {
		b.logger.Warn().
			Str("url_ref", ref).
			Str("key_ref", claims.Ref).
			Msg("public key was issued for a different project")
	}

	return claims
}
