package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidIdentity means the identity token was forged, expired or minted for another project.
	ErrInvalidIdentity = errors.New("invalid identity token")
	// ErrIdentityUnavailable means the provider's signing keys could not be fetched.
	ErrIdentityUnavailable = errors.New("identity provider unavailable")
)

const defaultCertsTTL = time.Hour

// Identity is the account the identity provider vouches for.
type Identity struct {
	UID           string
	Email         string
	EmailVerified bool
}

// IdentityVerifier checks an ID token minted by the external identity provider.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

type firebaseClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// FirebaseVerifier verifies Firebase Authentication ID tokens against the
// project's published x509 signing certificates.
type FirebaseVerifier struct {
	projectID string
	certsURL  string
	client    *http.Client
	now       func() time.Time

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

var _ IdentityVerifier = (*FirebaseVerifier)(nil)

// NewFirebaseVerifier builds a verifier for projectID. A nil client uses http.DefaultClient.
func NewFirebaseVerifier(projectID, certsURL string, client *http.Client) (*FirebaseVerifier, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}
	if certsURL == "" {
		return nil, fmt.Errorf("firebase certs url is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &FirebaseVerifier{
		projectID: projectID,
		certsURL:  certsURL,
		client:    client,
		now:       time.Now,
	}, nil
}

// Verify checks signature, issuer, audience and expiry of raw.
func (v *FirebaseVerifier) Verify(ctx context.Context, raw string) (Identity, error) {
	var claims firebaseClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (any, error) {
		kid, _ := tok.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid header")
		}
		return v.key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, ErrIdentityUnavailable) {
			return Identity{}, err
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	if claims.Subject == "" || claims.Email == "" {
		return Identity{}, fmt.Errorf("%w: missing sub or email", ErrInvalidIdentity)
	}
	return Identity{UID: claims.Subject, Email: claims.Email, EmailVerified: claims.EmailVerified}, nil
}

// key returns the certificate key for kid. The set is refetched only after
// the provider's max-age runs out.
func (v *FirebaseVerifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	k, ok := v.keys[kid]
	fresh := v.now().Before(v.expires)
	v.mu.RUnlock()

	if !fresh {
		if err := v.refresh(ctx); err != nil {
			return nil, err
		}
		v.mu.RLock()
		k, ok = v.keys[kid]
		v.mu.RUnlock()
	}
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return k, nil
}

func (v *FirebaseVerifier) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: certs endpoint returned %d", ErrIdentityUnavailable, resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return fmt.Errorf("%w: decode certs: %v", ErrIdentityUnavailable, err)
	}
	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, cert := range certs {
		k, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cert))
		if err != nil {
			return fmt.Errorf("%w: parse cert %s: %v", ErrIdentityUnavailable, kid, err)
		}
		keys[kid] = k
	}

	v.mu.Lock()
	v.keys = keys
	v.expires = v.now().Add(maxAge(resp.Header.Get("Cache-Control")))
	v.mu.Unlock()
	return nil
}

func maxAge(cacheControl string) time.Duration {
	for _, d := range strings.Split(cacheControl, ",") {
		if s, ok := strings.CutPrefix(strings.TrimSpace(d), "max-age="); ok {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				return time.Duration(n) * time.Second
			}
		}
	}
	return defaultCertsTTL
}
