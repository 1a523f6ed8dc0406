package hints

import (
	"strings"
	"testing"
)

func TestForBrowserConnect(t *testing.T) {
	clearCIEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL",
			"ROD_NO_SANDBOX", "ROD_BROWSER_BIN"} {
			t.Setenv(key, "")
		}
	}

	t.Run("ci environment suggests sandbox flag", func(t *testing.T) {
		clearCIEnv(t)
		t.Setenv("CI", "true")

		orig := IsInContainer
		IsInContainer = func() bool { return false }
		defer func() { IsInContainer = orig }()

		hint := ForBrowserConnect()
		if !strings.Contains(hint, "ROD_NO_SANDBOX") {
			t.Errorf("hint = %q, want sandbox suggestion", hint)
		}
	})

	t.Run("container suggests sandbox flag", func(t *testing.T) {
		clearCIEnv(t)

		orig := IsInContainer
		IsInContainer = func() bool { return true }
		defer func() { IsInContainer = orig }()

		hint := ForBrowserConnect()
		if !strings.Contains(hint, "ROD_NO_SANDBOX") {
			t.Errorf("hint = %q, want sandbox suggestion", hint)
		}
	})

	t.Run("always suggests custom browser when unset", func(t *testing.T) {
		clearCIEnv(t)

		orig := IsInContainer
		IsInContainer = func() bool { return false }
		defer func() { IsInContainer = orig }()

		hint := ForBrowserConnect()
		if !strings.Contains(hint, "ROD_BROWSER_BIN") {
			t.Errorf("hint = %q, want browser bin suggestion", hint)
		}
	})

	t.Run("quiet when everything configured", func(t *testing.T) {
		clearCIEnv(t)
		t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

		orig := IsInContainer
		IsInContainer = func() bool { return false }
		defer func() { IsInContainer = orig }()

		if hint := ForBrowserConnect(); hint != "" {
			t.Errorf("hint = %q, want empty", hint)
		}
	})
}

func TestForTimeout(t *testing.T) {
	t.Parallel()

	hint := ForTimeout()
	if !strings.Contains(hint, "--timeout") {
		t.Errorf("hint = %q, want timeout flag mention", hint)
	}
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want standard prefix", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("always mentions config flag", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound(nil)
		if !strings.Contains(hint, "--config") {
			t.Errorf("hint = %q", hint)
		}
	})

	t.Run("mentions user config path when searched", func(t *testing.T) {
		t.Parallel()

		paths := []string{
			"local.yaml",
			"/home/u/.config/go-md2slides/local.yaml",
		}
		hint := ForConfigNotFound(paths)
		if !strings.Contains(hint, ".config/go-md2slides") {
			t.Errorf("hint = %q", hint)
		}
	})
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	if hint := ForOutputDirectory(); !strings.Contains(hint, "writable") {
		t.Errorf("hint = %q", hint)
	}
}

func TestForThemeNotFound(t *testing.T) {
	t.Parallel()

	t.Run("lists available themes", func(t *testing.T) {
		t.Parallel()

		hint := ForThemeNotFound([]string{"tech", "clean", "corporate"})
		if !strings.Contains(hint, "tech, clean, corporate") {
			t.Errorf("hint = %q", hint)
		}
	})

	t.Run("empty list yields no hint", func(t *testing.T) {
		t.Parallel()

		if hint := ForThemeNotFound(nil); hint != "" {
			t.Errorf("hint = %q, want empty", hint)
		}
	})
}

func TestForMathMode(t *testing.T) {
	t.Parallel()

	hint := ForMathMode()
	if !strings.Contains(hint, "katex") || !strings.Contains(hint, "mathml") {
		t.Errorf("hint = %q", hint)
	}
}
