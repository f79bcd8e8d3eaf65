// file: internals/route/pages.go
package route

import (
	"fmt"
	"html"
)

const loginPageHTML = `<!DOCTYPE html>
<html lang="id">
<head>
  <meta charset="utf-8">
  <title>Masuk — MuaKu</title>
</head>
<body>
  <h1>MuaKu</h1>
  <form id="login-form">
    <input name="username" placeholder="Username atau email" autocomplete="username">
    <input name="password" type="password" placeholder="Password" autocomplete="current-password">
    <button type="submit">Masuk</button>
    <p id="login-error" hidden></p>
  </form>
  <script>
    document.getElementById('login-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const form = new FormData(e.target);
      const res = await fetch('/api/auth/login', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({username: form.get('username'), password: form.get('password')})
      });
      if (res.ok) {
        const next = new URLSearchParams(location.search).get('next');
        location.href = next && next.startsWith('/') ? next : '/dashboard';
        return;
      }
      const err = document.getElementById('login-error');
      err.textContent = 'Username atau password salah';
      err.hidden = false;
    });
  </script>
</body>
</html>`

func dashboardPageHTML(fullName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="id">
<head>
  <meta charset="utf-8">
  <title>Dashboard — MuaKu</title>
</head>
<body>
  <h1>Selamat datang, %s</h1>
  <nav>
    <a href="/api/clients">Klien</a>
    <a href="/api/orders">Order</a>
    <a href="/api/invoices">Invoice</a>
    <a href="/api/appointments">Jadwal</a>
    <a href="/login?from=dashboard">Ganti akun</a>
  </nav>
</body>
</html>`, html.EscapeString(fullName))
}
