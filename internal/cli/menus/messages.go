package menus

// Тексты интерфейса
const (
	titleWelcome      = "Salón ✂ Bienvenido"
	titleClient       = "Menú de Cliente"
	titleReceptionist = "Menú de Recepción"
	titleAdmin        = "Menú de Administración"
	titleUsers        = "Gestión de Usuarios"
	titleServices     = "Gestión de Servicios"
	titleAppointments = "Gestión de Turnos"

	msgChooseOption = "Seleccione una opción:"
	msgEmail        = "Email:"
	msgPassword     = "Contraseña:"
	msgGoodbye      = "¡Hasta luego! Gracias por usar el sistema."
	msgSignedIn     = "Acceso concedido. Bienvenido/a, %s (%s)."
	msgSignedOut    = "Sesión cerrada."
	msgCancelled    = "Operación cancelada."
	msgUnknownRole  = "Rol no reconocido, no hay un menú disponible para esta cuenta."
	msgNothingToDo  = "No hay turnos que cumplan la condición."

	optLogin  = "Acceder"
	optExit   = "Salir"
	optBack   = "Volver"
	optLogout = "Cerrar sesión"

	// cliente
	optRequestAppointment = "Solicitar turno"
	optMyAppointments     = "Ver mis turnos"
	optCancelMine         = "Cancelar un turno"
	optChangePassword     = "Cambiar contraseña"

	msgChooseDay       = "Elija el día:"
	msgChooseHour      = "Elija el horario:"
	msgChooseServices  = "Elija los servicios (espacio para marcar):"
	msgNoHours         = "No quedan horarios libres para ese día."
	msgNoServices      = "No hay servicios disponibles."
	msgBookingSummary  = "Servicios elegidos: total estimado %s, duración estimada %d minutos."
	msgConfirmBooking  = "¿Confirma el turno del %s a las %s por %s?"
	msgBooked          = "Turno #%d registrado para el %s a las %s. Total: %s"
	msgChooseToCancel  = "Elija el turno a cancelar:"
	msgConfirmCancel   = "¿Confirma la cancelación del turno #%d?"
	msgAppointmentDone = "Turno #%d: %s."
	msgNewPassword     = "Nueva contraseña:"
	msgRepeatPassword  = "Repita la contraseña:"
	msgPasswordChanged = "Contraseña actualizada."

	// recepción
	optToday            = "Turnos de hoy"
	optByDate           = "Turnos por fecha"
	optByStatus         = "Turnos por estado"
	optConfirmArrival   = "Confirmar llegada del cliente"
	optCheckout         = "Cobrar turno"
	optReprint          = "Reimprimir recibo"
	optCancelAppt       = "Cancelar turno"
	optDeleteAppt       = "Eliminar turno"
	optClientLookup     = "Consulta rápida de clientes"
	optRegisterClient   = "Registrar cliente"
	optListServices     = "Consultar servicios y precios"
	optSummary          = "Resumen de turnos"
	optAppointmentsMenu = "Gestión de turnos"
	optByID             = "Por número de turno"
	optByClientEmail    = "Por email del cliente"

	msgAppointmentID    = "Número de turno:"
	msgDate             = "Fecha (dd/mm/aaaa):"
	msgChooseStatus     = "Estado:"
	msgConfirmHow       = "¿Cómo desea buscar el turno?"
	msgClientEmail      = "Email del cliente:"
	msgChooseToConfirm  = "Elija el turno a confirmar:"
	msgConfirmCheckout  = "¿Cobrar %s por el turno #%d?"
	msgCheckedOut       = "Turno #%d cobrado. Recibo: %s"
	msgReceiptFailed    = "El cobro del turno #%d quedó registrado, pero no se pudo generar el recibo."
	msgTotalMismatch    = "Atención: la suma de los servicios (%s) no coincide con el total del turno (%s)."
	msgReprinted        = "Recibo generado: %s"
	msgConfirmDelete    = "¿Eliminar definitivamente el turno #%d?"
	msgDeleted          = "Turno #%d eliminado."
	msgSearchFragment   = "Nombre o apellido:"
	msgName             = "Nombre:"
	msgSurname          = "Apellido:"
	msgClientRegistered = "Cliente registrado con el número %d."
	msgInvalidDate      = "fecha inválida, use el formato dd/mm/aaaa"
	msgEmptySearch      = "ingrese al menos un carácter"

	// administración
	optUsersMenu      = "Gestión de usuarios"
	optServicesMenu   = "Gestión de servicios"
	optListStaff      = "Listar empleados"
	optListClients    = "Listar clientes"
	optCreateUser     = "Crear usuario"
	optEditUser       = "Editar usuario"
	optDeactivateUser = "Desactivar usuario"
	optCreateService  = "Crear servicio"
	optEditService    = "Editar servicio"
	optDeactivateSvc  = "Desactivar servicio"
	optListAll        = "Listar todos"

	msgUserID          = "Número de usuario:"
	msgChooseRole      = "Rol:"
	msgUserCreated     = "Usuario %s creado con el número %d."
	msgUserUpdated     = "Usuario %s actualizado."
	msgActive          = "¿Activo?"
	msgConfirmDeactUsr = "¿Desactivar al usuario %s?"
	msgUserDeactivated = "Usuario #%d desactivado."
	msgServiceID       = "Número de servicio:"
	msgServiceName     = "Nombre del servicio:"
	msgDescription     = "Descripción (opcional):"
	msgPrice           = "Precio:"
	msgDuration        = "Duración en minutos:"
	msgServiceCreated  = "Servicio %q creado con el número %d."
	msgServiceUpdated  = "Servicio %q actualizado."
	msgConfirmDeactSvc = "¿Desactivar el servicio %q?"
	msgSvcDeactivated  = "Servicio #%d desactivado."
	msgKeepHint        = "Enter mantiene el valor actual."
)
