package email

const verificationTemplate = `
<html>
<body>
  <h2>Hola %s,</h2>
  <p>Gracias por registrarte en ServiMarket. Usa el siguiente código para verificar tu cuenta:</p>
  <p><strong>%s</strong></p>
  <p>Si no creaste esta cuenta, ignora este correo.</p>
</body>
</html>`

const passwordResetTemplate = `
<html>
<body>
  <h2>Hola %s,</h2>
  <p>Recibimos una solicitud para restablecer tu contraseña. Usa este código:</p>
  <p><strong>%s</strong></p>
  <p>El código expira en una hora. Si no solicitaste el cambio, ignora este correo.</p>
</body>
</html>`

const withdrawalTemplate = `
<html>
<body>
  <h2>Hola %s,</h2>
  <p>Tu solicitud de retiro por $%.2f cambió de estado: <strong>%s</strong>.</p>
</body>
</html>`
